package mockapi

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

var seedNames = [][2]string{
	{"George", "Bluth"}, {"Janet", "Weaver"}, {"Emma", "Wong"},
	{"Eve", "Holt"}, {"Charles", "Morris"}, {"Tracey", "Ramos"},
	{"Michael", "Lawson"}, {"Lindsay", "Ferguson"}, {"Tobias", "Funke"},
	{"Byron", "Fields"}, {"George", "Edwards"}, {"Rachel", "Howell"},
}

// Directory is the in-memory user table. IDs are never reused.
type Directory struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int
}

// NewDirectory returns a directory holding the seed users.
func NewDirectory() *Directory {
	d := &Directory{nextID: 1}
	for _, n := range seedNames {
		id := d.nextID
		d.nextID++
		d.users = append(d.users, models.User{
			ID:        id,
			Email:     strings.ToLower(n[0] + "." + n[1] + "@reqres.in"),
			FirstName: n[0],
			LastName:  n[1],
			Avatar:    fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", id),
		})
	}
	return d
}

// Page returns the users of page (1-based) and the total count.
func (d *Directory) Page(page, perPage int) ([]models.User, int) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	total := len(d.users)
	if page < 1 || perPage < 1 || page > (total+perPage-1)/perPage {
		return []models.User{}, total
	}
	start := (page - 1) * perPage
	end := min(start+perPage, total)
	return slices.Clone(d.users[start:end]), total
}

// ByEmail finds a user, ignoring case.
func (d *Directory) ByEmail(email string) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

// Create stores a new user and returns it with its id.
func (d *Directory) Create(in models.UserInput) models.User {
	d.mu.Lock()
	defer d.mu.Unlock()

	u := models.User{
		ID:        d.nextID,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Avatar:    in.Avatar,
	}
	d.nextID++
	d.users = append(d.users, u)
	return u
}

// Update merges the non-empty fields of patch into user id.
func (d *Directory) Update(id int, patch models.UserInput) (models.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := slices.IndexFunc(d.users, func(u models.User) bool { return u.ID == id })
	if i < 0 {
		return models.User{}, false
	}
	d.users[i] = d.users[i].Merge(models.User{
		Email:     patch.Email,
		FirstName: patch.FirstName,
		LastName:  patch.LastName,
		Avatar:    patch.Avatar,
	})
	return d.users[i], true
}

// Delete removes user id and reports whether it existed.
func (d *Directory) Delete(id int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := len(d.users)
	d.users = slices.DeleteFunc(d.users, func(u models.User) bool { return u.ID == id })
	return len(d.users) != n
}
