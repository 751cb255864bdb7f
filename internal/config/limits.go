package config

const (
	// MaxBoardTitleLength is the maximum length for board titles, measured
	// after trimming surrounding whitespace. Limited to 60 to fit in
	// PostgreSQL VARCHAR(60) and keep titles legible on board cards.
	MaxBoardTitleLength = 60
)
