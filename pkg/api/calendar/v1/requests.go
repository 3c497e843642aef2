package calendarv1

import (
	"fmt"
	"math"

	"github.com/muhlemmer/bsdate/pkg/bs"
	"google.golang.org/protobuf/types/known/structpb"
)

// Request fields of AddDays and DiffDays.
// Dates are BS dates in YYYY-MM-DD form, days is an integral number.
const (
	FieldDate = "date"
	FieldDays = "days"
	FieldFrom = "from"
	FieldTo   = "to"
)

// maxDays is the largest magnitude of days a float64 number value carries exactly.
const maxDays = 1 << 53

// AddDaysRequest returns the AddDays request for adding days to d.
func AddDaysRequest(d bs.Date, days int) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldDate: structpb.NewStringValue(d.String()),
		FieldDays: structpb.NewNumberValue(float64(days)),
	}}
}

// DiffDaysRequest returns the DiffDays request for the days from one date to another.
func DiffDaysRequest(from, to bs.Date) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldFrom: structpb.NewStringValue(from.String()),
		FieldTo:   structpb.NewStringValue(to.String()),
	}}
}

// ParseAddDaysRequest returns the date and days of an AddDays request.
func ParseAddDaysRequest(req *structpb.Struct) (d bs.Date, days int, err error) {
	if d, err = dateField(req, FieldDate); err != nil {
		return d, 0, err
	}

	v, ok := req.GetFields()[FieldDays].GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return d, 0, fmt.Errorf("calendarv1: field %q: want number", FieldDays)
	}
	n := v.NumberValue
	if n != math.Trunc(n) || math.Abs(n) > maxDays {
		return d, 0, fmt.Errorf("calendarv1: field %q: %v is not an integral amount of days", FieldDays, n)
	}

	return d, int(n), nil
}

// ParseDiffDaysRequest returns the dates of a DiffDays request.
func ParseDiffDaysRequest(req *structpb.Struct) (from, to bs.Date, err error) {
	if from, err = dateField(req, FieldFrom); err != nil {
		return from, to, err
	}
	to, err = dateField(req, FieldTo)
	return from, to, err
}

func dateField(req *structpb.Struct, name string) (bs.Date, error) {
	v, ok := req.GetFields()[name].GetKind().(*structpb.Value_StringValue)
	if !ok {
		return bs.Date{}, fmt.Errorf("calendarv1: field %q: want string", name)
	}
	d, err := bs.ParseDate(v.StringValue)
	if err != nil {
		return bs.Date{}, fmt.Errorf("calendarv1: field %q: %w", name, err)
	}
	return d, nil
}
