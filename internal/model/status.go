package model

type OrderStatus int

const (
	StatusCancel            OrderStatus = -1
	StatusRestaurantPending OrderStatus = 0
	StatusRestaurantAccept  OrderStatus = 1
	StatusDelivererPending  OrderStatus = 2
	StatusDelivering        OrderStatus = 3
	StatusDone              OrderStatus = 4
)

const (
	ColorWarning   = "warning"
	ColorPrimary   = "primary"
	ColorSecondary = "secondary"
	ColorSuccess   = "success"
	ColorError     = "error"
	ColorDefault   = "default"
)

const UnknownStatusLabel = "UNKNOWN"

type Display struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Statuses returns every known status in lifecycle order, cancel last.
func Statuses() []OrderStatus {
	return []OrderStatus{
		StatusRestaurantPending,
		StatusRestaurantAccept,
		StatusDelivererPending,
		StatusDelivering,
		StatusDone,
		StatusCancel,
	}
}

// DisplayOf is total: codes outside the enumeration render as UNKNOWN.
func DisplayOf(s OrderStatus) Display {
	switch s {
	case StatusRestaurantPending:
		return Display{Label: "RESTAURANT_PENDING", Color: ColorWarning}
	case StatusRestaurantAccept:
		return Display{Label: "RESTAURANT_ACCEPT", Color: ColorPrimary}
	case StatusDelivererPending:
		return Display{Label: "DELIVERER_PENDING", Color: ColorSecondary}
	case StatusDelivering:
		return Display{Label: "DELIVERING", Color: ColorPrimary}
	case StatusDone:
		return Display{Label: "DONE", Color: ColorSuccess}
	case StatusCancel:
		return Display{Label: "CANCEL", Color: ColorError}
	default:
		return Display{Label: UnknownStatusLabel, Color: ColorDefault}
	}
}

func (s OrderStatus) Valid() bool {
	return s >= StatusCancel && s <= StatusDone
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDone || s == StatusCancel
}

func (s OrderStatus) String() string {
	return DisplayOf(s).Label
}
