package places

// Card is one rendered place in the list view.
type Card struct {
	ID         string
	Image      string
	Title      string
	Price      string
	Location   string
	DetailsURL string
	Hidden     bool
}

type ListView struct {
	Cards     []Card
	Countries []string
	Selected  string
}

type ReviewView struct {
	Author  string
	Comment string
	Stars   string
}

type DetailView struct {
	ID        string
	Title     string
	Image     string
	Location  string
	Price     string
	Host      string
	Rooms     string
	Bathrooms string
	MaxGuests string
	Amenities string
	Reviews   []ReviewView
}
