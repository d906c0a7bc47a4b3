package models

// BookingStep enumerates the wizard steps in order.
type BookingStep int

const (
	StepCategory BookingStep = iota + 1
	StepBrand
	StepModel
	StepRepairs
	StepSchedule
	StepConfirmed
)

// ContactDetails are collected on the final wizard step.
type ContactDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes,omitempty"`
}

// Complete reports whether all required contact fields are present.
func (c ContactDetails) Complete() bool {
	return c.Name != "" && c.Email != "" && c.Phone != ""
}

// BookingSession holds the wizard state between steps. Earlier selections
// are retained on back navigation so the customer can step forward again.
type BookingSession struct {
	SessionID string          `json:"sessionId"`
	Step      BookingStep     `json:"step"`
	Category  *DeviceCategory `json:"category,omitempty"`
	Brand     *Brand          `json:"brand,omitempty"`
	Model     *DeviceModel    `json:"model,omitempty"`
	Repairs   []RepairOption  `json:"repairs,omitempty"`
	Date      string          `json:"date,omitempty"`
	Time      string          `json:"time,omitempty"`
	Contact   ContactDetails  `json:"contact"`
}

// TotalPrice sums the prices of the selected repairs.
func (s *BookingSession) TotalPrice() float64 {
	var total float64
	for _, r := range s.Repairs {
		total += r.Price
	}
	return total
}

// BookingReceipt is presented to the customer once the wizard completes.
// Nothing is submitted anywhere else.
type BookingReceipt struct {
	SessionID  string         `json:"sessionId"`
	Brand      string         `json:"brand"`
	Model      string         `json:"model"`
	Repairs    []RepairOption `json:"repairs"`
	Date       string         `json:"date"`
	Time       string         `json:"time"`
	Contact    ContactDetails `json:"contact"`
	TotalPrice float64        `json:"totalPrice"`
}
