package domain

// Workspace represents a Clockify workspace the user belongs to.
type Workspace struct {
	ID   string
	Name string
}
