package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	ShowsTable = "shows"

	priceMaxDigits     = 10
	priceDecimalPlaces = 2
)

type Show struct {
	ID             int64           `gorm:"primaryKey" json:"id"`
	MovieTitle     string          `gorm:"type:varchar(120);not null" json:"movie_title"`
	Room           string          `gorm:"type:varchar(20);not null" json:"room"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	AvailableSeats int             `gorm:"not null" json:"available_seats"`
}

func (Show) TableName() string {
	return ShowsTable
}

// ShowInput is the request body for create and update. Nil pointers are
// fields the client left out.
type ShowInput struct {
	MovieTitle     *string          `json:"movie_title" validate:"required,min=1,max=120"`
	Room           *string          `json:"room" validate:"required,min=1,max=20"`
	Price          *decimal.Decimal `json:"price" validate:"required"`
	AvailableSeats *int             `json:"available_seats" validate:"required"`
}

func (in *ShowInput) present() []string {
	var out []string
	if in.MovieTitle != nil {
		out = append(out, "MovieTitle")
	}
	if in.Room != nil {
		out = append(out, "Room")
	}
	if in.Price != nil {
		out = append(out, "Price")
	}
	if in.AvailableSeats != nil {
		out = append(out, "AvailableSeats")
	}
	return out
}

func (in *ShowInput) Validate(partial bool) error {
	trimPtr(in.MovieTitle)
	trimPtr(in.Room)

	verr := &ValidationError{}
	if err := validateInput(in, partial, in.present()); err != nil {
		fieldErrs, ok := err.(*ValidationError)
		if !ok {
			return err
		}
		verr = fieldErrs
	}
	if in.Price != nil {
		if msg := checkPrice(*in.Price); msg != "" {
			verr.Add("price", msg)
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}

// checkPrice enforces numeric(10,2): at most two decimal places and at most
// eight digits before the point.
func checkPrice(d decimal.Decimal) string {
	places := 0
	if exp := d.Exponent(); exp < 0 {
		places = int(-exp)
	}
	coef := d.Coefficient()
	digits := len(coef.Abs(coef).String())
	if d.Exponent() > 0 {
		digits += int(d.Exponent())
	}
	whole := digits - places
	if whole < 0 {
		whole = 0
	}

	switch {
	case places > priceDecimalPlaces:
		return fmt.Sprintf("Ensure that there are no more than %d decimal places.", priceDecimalPlaces)
	case whole > priceMaxDigits-priceDecimalPlaces:
		return fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", priceMaxDigits-priceDecimalPlaces)
	}
	return ""
}

// Apply copies the supplied fields onto s.
func (in *ShowInput) Apply(s *Show) {
	if in.MovieTitle != nil {
		s.MovieTitle = *in.MovieTitle
	}
	if in.Room != nil {
		s.Room = *in.Room
	}
	if in.Price != nil {
		s.Price = *in.Price
	}
	if in.AvailableSeats != nil {
		s.AvailableSeats = *in.AvailableSeats
	}
}

// Changes returns the supplied fields keyed by column name.
func (in *ShowInput) Changes() map[string]interface{} {
	out := map[string]interface{}{}
	if in.MovieTitle != nil {
		out["movie_title"] = *in.MovieTitle
	}
	if in.Room != nil {
		out["room"] = *in.Room
	}
	if in.Price != nil {
		out["price"] = *in.Price
	}
	if in.AvailableSeats != nil {
		out["available_seats"] = *in.AvailableSeats
	}
	return out
}
