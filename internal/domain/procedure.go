package domain

// Procedure процедура из каталога клиники
type Procedure struct {
	ID           string
	Name         string
	Description  string
	Icon         string
	Professional string // кто выполняет процедуру
}
