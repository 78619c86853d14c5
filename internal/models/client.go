package models

import "github.com/google/uuid"

// Client is a read-only lookup record owned by the surrounding CRUD layer.
type Client struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// FullName returns the display name, skipping empty parts.
func (c Client) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Project is a read-only lookup record owned by the surrounding CRUD layer.
type Project struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ClientID uuid.UUID `json:"client_id"`
}

// Directory resolves client and project ids to display names. The quote core
// never creates or validates these records; an unknown or absent id resolves
// to the empty string.
type Directory struct {
	clients  map[uuid.UUID]Client
	projects map[uuid.UUID]Project
}

// NewDirectory indexes the given records for lookup.
func NewDirectory(clients []Client, projects []Project) *Directory {
	d := &Directory{
		clients:  make(map[uuid.UUID]Client, len(clients)),
		projects: make(map[uuid.UUID]Project, len(projects)),
	}
	for _, c := range clients {
		d.clients[c.ID] = c
	}
	for _, p := range projects {
		d.projects[p.ID] = p
	}
	return d
}

// ClientName returns the client's display name, or "" when id is nil or
// unknown.
func (d *Directory) ClientName(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return d.clients[*id].FullName()
}

// ProjectName returns the project's name, or "" when id is nil or unknown.
func (d *Directory) ProjectName(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return d.projects[*id].Name
}
