package entity

// DueSchedule is one row of the due set: a schedule together with the plant
// it belongs to and the user who owns that plant.
type DueSchedule struct {
	Schedule *CareSchedule
	Plant    *Plant
	Owner    *User
}
