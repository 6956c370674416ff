package model

// Person is one row of the people list, as read from a sheet or file
type Person struct {
	Name     string
	Category string
	Choices  []string
	Avoids   []string
}

// HasChoices reports whether the person named anyone they want to share with
func (p Person) HasChoices() bool {
	return len(p.Choices) > 0
}

// Assignment is one person's place in a published solution
type Assignment struct {
	Category string
	// Room is 1-based within the category
	Room          int
	Name          string
	ChoicesInRoom []string
}
