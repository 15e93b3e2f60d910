package catalog

import (
	"strings"

	"github.com/m04kA/OdontoBooking/internal/domain"
)

var procedures = []domain.Procedure{
	{
		ID:           "1",
		Icon:         "happy-outline",
		Name:         "Limpeza Dental (Profilaxia)",
		Description:  "Remoção completa de placa bacteriana, tártaro e manchas, seguida de polimento para dentes mais saudáveis e brilhantes.",
		Professional: "Dr(a). Ana Silva",
	},
	{
		ID:           "2",
		Icon:         "sunny-outline",
		Name:         "Clareamento Dental",
		Description:  "Técnicas seguras e eficazes para clarear o esmalte dental, proporcionando um sorriso visivelmente mais branco.",
		Professional: "Dr(a). Carlos Lima",
	},
	{
		ID:           "3",
		Icon:         "build-outline",
		Name:         "Restaurações (Obturações)",
		Description:  "Reparo de dentes afetados por cáries ou fraturas, utilizando materiais estéticos e resistentes como resina composta.",
		Professional: "Dr(a). Sofia Costa",
	},
	{
		ID:           "4",
		Icon:         "pulse-outline",
		Name:         "Tratamento de Canal (Endodontia)",
		Description:  "Tratamento da parte interna do dente (polpa) para salvar dentes infectados ou inflamados, aliviando a dor.",
		Professional: "Dr(a). Sofia Costa",
	},
	{
		ID:           "5",
		Icon:         "trending-up-outline",
		Name:         "Implantes Dentários",
		Description:  "Solução moderna e duradoura para a substituição de dentes perdidos, restaurando função e estética.",
		Professional: "Dr(a). Carlos Lima",
	},
	{
		ID:           "6",
		Icon:         "apps-outline",
		Name:         "Ortodontia (Aparelhos)",
		Description:  "Correção do alinhamento dental e problemas de mordida com diversos tipos de aparelhos ortodônticos.",
		Professional: "Dr(a). Bruno Mendes",
	},
	{
		ID:           "7",
		Icon:         "layers-outline",
		Name:         "Próteses Dentárias",
		Description:  "Reabilitação oral com coroas, pontes ou dentaduras para devolver a função mastigatória e a beleza do sorriso.",
		Professional: "Dr(a). Bruno Mendes",
	},
}

// Service каталог процедур клиники
type Service struct {
	procedures          []domain.Procedure
	defaultProfessional string
}

// NewService создает каталог со стандартным списком процедур
func NewService(defaultProfessional string) *Service {
	if defaultProfessional == "" {
		defaultProfessional = domain.DefaultProfessionalName
	}
	return &Service{
		procedures:          procedures,
		defaultProfessional: defaultProfessional,
	}
}

// List возвращает копию списка процедур
func (s *Service) List() []domain.Procedure {
	return append([]domain.Procedure{}, s.procedures...)
}

// GetByID ищет процедуру по ID
func (s *Service) GetByID(id string) (domain.Procedure, bool) {
	for _, p := range s.procedures {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Procedure{}, false
}

// ProfessionalFor возвращает специалиста по названию процедуры (без учёта регистра).
// Для неизвестных процедур возвращается специалист клиники по умолчанию.
func (s *Service) ProfessionalFor(procedureName string) string {
	name := strings.TrimSpace(procedureName)
	for _, p := range s.procedures {
		if strings.EqualFold(p.Name, name) {
			return p.Professional
		}
	}
	return s.defaultProfessional
}
