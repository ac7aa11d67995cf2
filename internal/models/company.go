package models

type Company struct {
	Name  string
	Color string
}

// DefaultCompanies lists the SIM brands operators sell for. Sale records
// reference a company by name.
func DefaultCompanies() []Company {
	return []Company{
		{Name: "Ucell", Color: "#9333EA"},
		{Name: "Mobiuz", Color: "#DC2626"},
		{Name: "Beeline", Color: "#FACC15"},
		{Name: "Uztelecom", Color: "#3B82F6"},
		{Name: "Humans", Color: "#F97316"},
	}
}

func KnownCompany(name string) bool {
	for _, company := range DefaultCompanies() {
		if company.Name == name {
			return true
		}
	}
	return false
}
