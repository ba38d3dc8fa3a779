package common

const (
	MinRating = 1
	MaxRating = 5
)

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}
