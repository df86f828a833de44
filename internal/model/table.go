package model

// TableType distinguishes counter seating from standard tables.
type TableType string

const (
	TableSgabello TableType = "sgabello" // counter stool
	TableTavolo   TableType = "tavolo"   // standard table
)

// Table is static reference data describing one bookable table of the
// dining room. Seat limits are used by the booking form to filter
// tables by party size; they are not enforced server-side.
type Table struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	MinSeats int       `json:"minSeats"`
	MaxSeats int       `json:"maxSeats"`
	Type     TableType `json:"type"`
}

// Tables is the floor plan: three counter seats at the bancone and
// eight standard tables.
var Tables = []Table{
	{ID: "B1", Name: "Bancone B1", MinSeats: 1, MaxSeats: 4, Type: TableSgabello},
	{ID: "B2", Name: "Bancone B2", MinSeats: 1, MaxSeats: 4, Type: TableSgabello},
	{ID: "B3", Name: "Bancone B3", MinSeats: 1, MaxSeats: 4, Type: TableSgabello},
	{ID: "S1", Name: "Tavolo S1", MinSeats: 3, MaxSeats: 5, Type: TableTavolo},
	{ID: "S2", Name: "Tavolo S2", MinSeats: 2, MaxSeats: 3, Type: TableTavolo},
	{ID: "S3", Name: "Tavolo S3", MinSeats: 3, MaxSeats: 5, Type: TableTavolo},
	{ID: "S4", Name: "Tavolo S4", MinSeats: 1, MaxSeats: 2, Type: TableTavolo},
	{ID: "S5", Name: "Tavolo S5", MinSeats: 1, MaxSeats: 2, Type: TableTavolo},
	{ID: "S6", Name: "Tavolo S6", MinSeats: 1, MaxSeats: 2, Type: TableTavolo},
	{ID: "S7", Name: "Tavolo S7", MinSeats: 1, MaxSeats: 2, Type: TableTavolo},
	{ID: "S8", Name: "Tavolo S8", MinSeats: 3, MaxSeats: 5, Type: TableTavolo},
}

// TableByID looks up a table in the static catalogue.
func TableByID(id string) (Table, bool) {
	for _, t := range Tables {
		if t.ID == id {
			return t, true
		}
	}
	return Table{}, false
}
