// Package store owns the single AppState aggregate. Every command takes
// the current snapshot to a new one under one mutex, so each command is
// atomic by construction; readers only ever see value copies.
package store

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/sambrend/nomer/internal/models"
	"github.com/sambrend/nomer/internal/services"
)

// StateKey is the fixed blob-store key the whole aggregate lives under.
const StateKey = "sam_brend_db"

var (
	ErrCheckInExists = errors.New("check-in already exists for this day")
)

// BlobStore is the external key-value persistence the aggregate is
// written to wholesale after every command.
type BlobStore interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, payload []byte) error
}

type Store struct {
	mu       sync.Mutex
	state    models.AppState
	blobs    BlobStore
	location *time.Location
}

// Open seeds a store from the blob under StateKey. A missing blob, a
// corrupt one, or one with an unknown schema version all fall back to
// the empty aggregate; only the load error itself is reported.
func Open(blobs BlobStore, location *time.Location) (*Store, error) {
	if location == nil {
		location = time.UTC
	}
	newStore := &Store{
		state:    models.EmptyAppState(),
		blobs:    blobs,
		location: location,
	}

	payload, found, err := blobs.Load(StateKey)
	if err != nil {
		return nil, err
	}
	if found {
		state, err := decodeState(payload)
		if err != nil {
			log.Printf("state blob unusable, starting empty: %v", err)
		} else {
			newStore.state = state
		}
	}
	return newStore, nil
}

// Snapshot returns a deep copy of the current aggregate.
func (store *Store) Snapshot() models.AppState {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.state.Clone()
}

func (store *Store) Location() *time.Location {
	return store.location
}

// apply runs a mutation against a working copy and installs the result.
// Persistence failures are logged and swallowed: the in-memory state
// stays authoritative for the rest of the session.
func (store *Store) apply(mutate func(state *models.AppState) error) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	next := store.state.Clone()
	if err := mutate(&next); err != nil {
		return err
	}
	store.state = next

	payload, err := encodeState(next)
	if err != nil {
		log.Printf("encode state: %v", err)
		return nil
	}
	if err := store.blobs.Save(StateKey, payload); err != nil {
		log.Printf("persist state: %v", err)
	}
	return nil
}

// SetCurrentUser replaces the active-session pointer. No validation.
func (store *Store) SetCurrentUser(user *models.User) error {
	return store.apply(func(state *models.AppState) error {
		if user == nil {
			state.CurrentUser = nil
			return nil
		}
		current := *user
		state.CurrentUser = &current
		return nil
	})
}

// AddUser prepends a new user record.
func (store *Store) AddUser(user models.User) error {
	return store.apply(func(state *models.AppState) error {
		state.Users = append([]models.User{user}, state.Users...)
		return nil
	})
}

// UserPatch carries partial-field updates; nil fields are left alone.
type UserPatch struct {
	FirstName    *string
	LastName     *string
	Phone        *string
	PasswordHash *string
	WorkingHours *string
}

func (patch UserPatch) applyTo(user *models.User) {
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}
	if patch.PasswordHash != nil {
		user.PasswordHash = *patch.PasswordHash
	}
	if patch.WorkingHours != nil {
		user.WorkingHours = *patch.WorkingHours
	}
}

// UpsertUserFields merges the patch into the matching user record, and
// into the current-user pointer when it refers to the same id. Unknown
// ids are a no-op.
func (store *Store) UpsertUserFields(userID string, patch UserPatch) error {
	return store.apply(func(state *models.AppState) error {
		for index := range state.Users {
			if state.Users[index].ID == userID {
				patch.applyTo(&state.Users[index])
			}
		}
		if state.CurrentUser != nil && state.CurrentUser.ID == userID {
			patch.applyTo(state.CurrentUser)
		}
		return nil
	})
}

// ApproveUser flips the approval flag. Idempotent.
func (store *Store) ApproveUser(userID string) error {
	return store.apply(func(state *models.AppState) error {
		for index := range state.Users {
			if state.Users[index].ID == userID {
				state.Users[index].IsApproved = true
			}
		}
		if state.CurrentUser != nil && state.CurrentUser.ID == userID {
			state.CurrentUser.IsApproved = true
		}
		return nil
	})
}

// AddCheckIn prepends a check-in. One record per user per local
// calendar day: a same-day duplicate is rejected, amendments go through
// AmendCheckIn instead.
func (store *Store) AddCheckIn(entry models.CheckIn) error {
	return store.apply(func(state *models.AppState) error {
		dayKey := services.DayKey(entry.Timestamp, store.location)
		for _, existing := range state.CheckIns {
			if existing.UserID == entry.UserID && services.SameLocalDay(existing.Timestamp, dayKey, store.location) {
				return ErrCheckInExists
			}
		}
		state.CheckIns = append([]models.CheckIn{entry}, state.CheckIns...)
		return nil
	})
}

// CheckInPatch replaces location and/or photo on an existing check-in.
type CheckInPatch struct {
	Location *models.GeoPoint
	Photo    *string
}

// AmendCheckIn merges the patch into every check-in owned by the user
// whose timestamp falls on the given local calendar day. Other users'
// records and the same user's other days are untouched.
func (store *Store) AmendCheckIn(userID string, dayKey string, patch CheckInPatch) error {
	return store.apply(func(state *models.AppState) error {
		for index := range state.CheckIns {
			checkIn := &state.CheckIns[index]
			if checkIn.UserID != userID || !services.SameLocalDay(checkIn.Timestamp, dayKey, store.location) {
				continue
			}
			if patch.Location != nil {
				checkIn.Location = *patch.Location
			}
			if patch.Photo != nil {
				checkIn.Photo = *patch.Photo
			}
		}
		return nil
	})
}

// AddSale merges into an existing record with the same (userId, date,
// company, tariff) tuple by summing count and bonus and taking the new
// timestamp; otherwise the sale is prepended as a new record.
func (store *Store) AddSale(sale models.SimSale) error {
	return store.apply(func(state *models.AppState) error {
		for index := range state.Sales {
			if state.Sales[index].SameTuple(sale) {
				state.Sales[index].Count += sale.Count
				state.Sales[index].Bonus += sale.Bonus
				state.Sales[index].Timestamp = sale.Timestamp
				return nil
			}
		}
		state.Sales = append([]models.SimSale{sale}, state.Sales...)
		return nil
	})
}

// RemoveSale deletes by id; absent ids are a no-op.
func (store *Store) RemoveSale(saleID string) error {
	return store.apply(func(state *models.AppState) error {
		filtered := make([]models.SimSale, 0, len(state.Sales))
		for _, sale := range state.Sales {
			if sale.ID != saleID {
				filtered = append(filtered, sale)
			}
		}
		state.Sales = filtered
		return nil
	})
}

// AddReport prepends a report. The store itself never merges or
// deduplicates reports; the API edge refuses a second report for the
// same user and day before it gets here.
func (store *Store) AddReport(report models.DailyReport) error {
	return store.apply(func(state *models.AppState) error {
		if report.Photos != nil && len(report.Photos) == 0 {
			report.Photos = nil
		}
		state.Reports = append([]models.DailyReport{report}, state.Reports...)
		return nil
	})
}
