package modes

type Mode uint8

const (
	ModeProduction Mode = iota
	// extra checks and verbose logs
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

func (m Mode) IsDevelopment() bool {
	return m == ModeDevelopment
}
