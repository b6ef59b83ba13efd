package models

// DailyReport is the front-desk projection for one calendar day.
type DailyReport struct {
	Date            string         `json:"date"`
	Arrivals        []Reservation  `json:"arrivals"`
	Departures      []Reservation  `json:"departures"`
	InHouse         int64          `json:"inHouse"`
	TotalRooms      int64          `json:"totalRooms"`
	RoomsByStatus   map[string]int `json:"roomsByStatus"`
	OccupancyRate   float64        `json:"occupancyRate"`
	NightRevenue    float64        `json:"nightRevenue"`
	PendingTasks    int64          `json:"pendingTasks"`
	InProgressTasks int64          `json:"inProgressTasks"`
}
