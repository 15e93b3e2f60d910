package domain

// Default values
const (
	DefaultProcedureName    = "Consulta Padrão"
	DefaultProfessionalName = "Equipe OdontoBuezzo"
	DefaultTimezone         = "America/Sao_Paulo"
	DefaultLookupTimeoutMs  = 5000
	DefaultMaxSessions      = 10000 // активных пациентов в памяти (сессии выбора, стеки навигации)
)

// Business validation constants
const (
	MinPatientAge          = 16
	MinPasswordLength      = 8
	MaxProcedureNameLength = 120
	MaxMarkerRangeDays     = 92
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Views списка записей
const (
	ViewUpcoming = "upcoming"
	ViewPast     = "past"
)
