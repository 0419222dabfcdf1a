package model

import "fmt"

// TransitionTable maps a current status to the ordered statuses reachable from it.
type TransitionTable map[OrderStatus][]OrderStatus

var (
	restaurantTransitions = MustTransitionTable(TransitionTable{
		StatusRestaurantPending: {StatusRestaurantAccept, StatusCancel},
		StatusRestaurantAccept:  {StatusDelivererPending, StatusDone, StatusCancel},
		StatusDelivererPending:  {StatusCancel},
		StatusDelivering:        {},
		StatusDone:              {},
		StatusCancel:            {},
	})

	delivererTransitions = MustTransitionTable(TransitionTable{
		StatusDelivererPending: {StatusDelivering},
		StatusDelivering:       {StatusDone, StatusCancel},
	})
)

// NewTransitionTable copies edges and rejects self-loops, unknown codes,
// duplicates and edges leaving a terminal status.
func NewTransitionTable(edges TransitionTable) (TransitionTable, error) {
	t := make(TransitionTable, len(edges))
	for from, targets := range edges {
		if !from.Valid() {
			return nil, fmt.Errorf("%w: unknown status %d", ErrInvalidTransitionTable, from)
		}
		if from.Terminal() && len(targets) > 0 {
			return nil, fmt.Errorf("%w: edge out of terminal status %s", ErrInvalidTransitionTable, from)
		}

		seen := make(map[OrderStatus]bool, len(targets))
		row := make([]OrderStatus, 0, len(targets))
		for _, to := range targets {
			switch {
			case !to.Valid():
				return nil, fmt.Errorf("%w: unknown status %d", ErrInvalidTransitionTable, to)
			case to == from:
				return nil, fmt.Errorf("%w: self-loop on %s", ErrInvalidTransitionTable, from)
			case seen[to]:
				return nil, fmt.Errorf("%w: duplicate edge %s -> %s", ErrInvalidTransitionTable, from, to)
			}
			seen[to] = true
			row = append(row, to)
		}
		t[from] = row
	}

	return t, nil
}

func MustTransitionTable(edges TransitionTable) TransitionTable {
	t, err := NewTransitionTable(edges)
	if err != nil {
		panic(err)
	}
	return t
}

// Next returns a copy of the row for from, empty when absent.
func (t TransitionTable) Next(from OrderStatus) []OrderStatus {
	row := t[from]
	res := make([]OrderStatus, len(row))
	copy(res, row)
	return res
}

func (t TransitionTable) Allows(from, to OrderStatus) bool {
	for _, s := range t[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionsOf returns the table a role acts through. Customers get an empty one.
func TransitionsOf(role Role) TransitionTable {
	switch role {
	case RoleRestaurant:
		return restaurantTransitions
	case RoleDeliverer:
		return delivererTransitions
	default:
		return TransitionTable{}
	}
}

func LegalNextStatuses(role Role, current OrderStatus) []OrderStatus {
	return TransitionsOf(role).Next(current)
}

func CanTransition(role Role, from, to OrderStatus) bool {
	return TransitionsOf(role).Allows(from, to)
}
