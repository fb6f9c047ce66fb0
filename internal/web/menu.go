package web

// MenuItem is one dish on the printed menu.
type MenuItem struct {
	Name        string
	Description string
	Price       string
	Dietary     []string
}

// MenuCategory groups dishes under one tab.
type MenuCategory struct {
	Name  string
	Items []MenuItem
}

// Menu is the static site menu. Content lives here, not in the backend; the
// kitchen updates it with a deploy.
var Menu = []MenuCategory{
	{
		Name: "Pizze Classiche",
		Items: []MenuItem{
			{"Margherita", "Pomodoro, mozzarella, basilico fresco", "€10", []string{"vegetarian"}},
			{"Marinara", "Pomodoro, aglio, origano, olio d'oliva", "€9", []string{"vegan"}},
			{"Capricciosa", "Pomodoro, mozzarella, prosciutto cotto, funghi, carciofi, olive", "€12", []string{"meat"}},
			{"Quattro Formaggi", "Mozzarella, gorgonzola, parmigiano, fontina", "€11", []string{"vegetarian"}},
			{"Diavola", "Pomodoro, mozzarella, salame piccante", "€12", []string{"spicy"}},
			{"Prosciutto e Funghi", "Mozzarella, prosciutto crudo, funghi porcini", "€13", []string{"meat"}},
			{"Napoli", "Pomodoro, mozzarella, acciughe, capperi, olive", "€11", []string{"pescatarian"}},
			{"Ortolana", "Mozzarella, verdure miste, pomodorini e basilico", "€10", []string{"vegan"}},
		},
	},
	{
		Name: "Pizze Speciali",
		Items: []MenuItem{
			{"Diavola", "Pomodoro, mozzarella, salame piccante", "€12", []string{"spicy"}},
		},
	},
	{Name: "Calzoni"},
	{Name: "Antipasti"},
	{Name: "Bevande"},
}

// MenuFor returns the category matching name, or the first category when the
// name is unknown.
func MenuFor(name string) MenuCategory {
	for _, c := range Menu {
		if c.Name == name {
			return c
		}
	}
	return Menu[0]
}
