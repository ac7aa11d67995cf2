package models

// AppState is the aggregate root: it owns every collection and is
// serialized and persisted as one unit. Collections keep insertion
// order with new items prepended, so most-recent-first holds for lists.
type AppState struct {
	CurrentUser *User         `json:"currentUser"`
	Users       []User        `json:"users"`
	CheckIns    []CheckIn     `json:"checkIns"`
	Sales       []SimSale     `json:"sales"`
	Reports     []DailyReport `json:"reports"`
}

func EmptyAppState() AppState {
	return AppState{
		Users:    []User{},
		CheckIns: []CheckIn{},
		Sales:    []SimSale{},
		Reports:  []DailyReport{},
	}
}

// Clone returns a deep copy; snapshots handed to readers must never
// alias store-owned slices.
func (state AppState) Clone() AppState {
	cloned := AppState{
		Users:    make([]User, len(state.Users)),
		CheckIns: make([]CheckIn, len(state.CheckIns)),
		Sales:    make([]SimSale, len(state.Sales)),
		Reports:  make([]DailyReport, len(state.Reports)),
	}
	copy(cloned.Users, state.Users)
	copy(cloned.CheckIns, state.CheckIns)
	copy(cloned.Sales, state.Sales)

	for index, report := range state.Reports {
		if report.Photos != nil {
			photos := make([]string, len(report.Photos))
			copy(photos, report.Photos)
			report.Photos = photos
		}
		cloned.Reports[index] = report
	}

	if state.CurrentUser != nil {
		current := *state.CurrentUser
		cloned.CurrentUser = &current
	}
	return cloned
}
