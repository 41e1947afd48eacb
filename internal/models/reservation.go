package models

import (
	"time"
)

const ReservationsTable = "reservations"

type ReservationStatus string

const (
	StatusReserved  ReservationStatus = "RESERVED"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

type Reservation struct {
	ID           int64             `gorm:"primaryKey" json:"id"`
	ShowID       int64             `gorm:"not null;index" json:"show"`
	Show         *Show             `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CustomerName string            `gorm:"type:varchar(120);not null" json:"customer_name"`
	Seats        int               `gorm:"not null" json:"seats"`
	Status       ReservationStatus `gorm:"type:varchar(20);not null;default:'RESERVED'" json:"status"`
	CreatedAt    time.Time         `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

func (Reservation) TableName() string {
	return ReservationsTable
}

type ReservationInput struct {
	Show         *int64             `json:"show" validate:"required,gt=0"`
	CustomerName *string            `json:"customer_name" validate:"required,min=1,max=120"`
	Seats        *int               `json:"seats" validate:"required,min=1"`
	Status       *ReservationStatus `json:"status" validate:"omitempty,oneof=RESERVED CONFIRMED CANCELLED"`
}

func (in *ReservationInput) present() []string {
	var out []string
	if in.Show != nil {
		out = append(out, "Show")
	}
	if in.CustomerName != nil {
		out = append(out, "CustomerName")
	}
	if in.Seats != nil {
		out = append(out, "Seats")
	}
	if in.Status != nil {
		out = append(out, "Status")
	}
	return out
}

func (in *ReservationInput) Validate(partial bool) error {
	trimPtr(in.CustomerName)
	return validateInput(in, partial, in.present())
}

// Apply copies the supplied fields onto r. CreatedAt is never touched.
func (in *ReservationInput) Apply(r *Reservation) {
	if in.Show != nil {
		r.ShowID = *in.Show
	}
	if in.CustomerName != nil {
		r.CustomerName = *in.CustomerName
	}
	if in.Seats != nil {
		r.Seats = *in.Seats
	}
	if in.Status != nil {
		r.Status = *in.Status
	}
}

func (in *ReservationInput) Changes() map[string]interface{} {
	out := map[string]interface{}{}
	if in.Show != nil {
		out["show_id"] = *in.Show
	}
	if in.CustomerName != nil {
		out["customer_name"] = *in.CustomerName
	}
	if in.Seats != nil {
		out["seats"] = *in.Seats
	}
	if in.Status != nil {
		out["status"] = string(*in.Status)
	}
	return out
}
