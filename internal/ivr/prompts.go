package ivr

import (
	"fmt"
	"strconv"
	"strings"
)

// Prompts тексты, которые произносит система
// Строки с %s/%d форматируются через fmt.Sprintf
type Prompts struct {
	Welcome            string
	ServiceMenuHeader  string // "Välj tjänst: "
	TimeMenuHeader     string // "Välj tid: "
	MenuItem           string // "%s för %s"
	MenuItemPrefix     string // "Tryck "
	MenuConjunction    string // " eller "
	Repeat             string // "Tryck 9 för att upprepa."
	OfferingItem       string // "%s (%d min)"
	SelectedOffering   string // "Du valde %s (%d min). "
	InvalidService     string // "Ogiltigt val. Tryck %s för att välja tjänst."
	InvalidTime        string // "Ogiltigt val. Tryck %s för att välja tid."
	NoSlots            string
	HoldPlaced         string // "Du har valt %s. ..."
	HoldUnavailable    string // "Tiden %s är tyvärr inte längre ledig. "
	ConfirmPrompt      string
	Confirmed          string // "... %s ... %s ..."
	ConfirmationFailed string
	Cancelled          string
	CallEnded          string
	HungUp             string
	Expired            string
	NoActiveCall       string
}

// DefaultPrompts шведские тексты
func DefaultPrompts() Prompts {
	return Prompts{
		Welcome:            "Välkommen till bokningssystemet.",
		ServiceMenuHeader:  "Välj tjänst: ",
		TimeMenuHeader:     "Välj tid: ",
		MenuItem:           "%s för %s",
		MenuItemPrefix:     "Tryck ",
		MenuConjunction:    " eller ",
		Repeat:             "Tryck 9 för att upprepa.",
		OfferingItem:       "%s (%d min)",
		SelectedOffering:   "Du valde %s (%d min). ",
		InvalidService:     "Ogiltigt val. Tryck %s för att välja tjänst.",
		InvalidTime:        "Ogiltigt val. Tryck %s för att välja tid.",
		NoSlots:            "Det finns tyvärr inga lediga tider för den tjänsten just nu. ",
		HoldPlaced:         "Du har valt %s. Tryck 1 för att bekräfta, 0 för att avbryta.",
		HoldUnavailable:    "Tiden %s är tyvärr inte längre ledig. ",
		ConfirmPrompt:      "Tryck 1 för att bekräfta, 0 för att avbryta.",
		Confirmed:          "Bokning bekräftad! Din tid är %s. Ditt boknings-ID är %s. Välkommen!",
		ConfirmationFailed: "Bokningen kunde inte bekräftas. Tryck 1 för att försöka igen, 0 för att avbryta.",
		Cancelled:          "Avbrutet. ",
		CallEnded:          "Samtalet är avslutat. Starta ett nytt samtal för att börja om.",
		HungUp:             "Samtal avslutat. Tack för att du ringde. Hej då!",
		Expired:            "Samtalet avslutades på grund av inaktivitet.",
		NoActiveCall:       "Inget aktivt samtal. Starta ett samtal först.",
	}
}

// offeringItems пункты меню услуг: "Snabb (15 min)"
func (p Prompts) offeringItems(catalog []Offering) []string {
	items := make([]string, len(catalog))
	for i, o := range catalog {
		items[i] = fmt.Sprintf(p.OfferingItem, o.Label, o.DurationMinutes)
	}
	return items
}

// ServiceMenu "Välj tjänst: Tryck 1 för Snabb (15 min), 2 för ... Tryck 9 för att upprepa."
func (p Prompts) ServiceMenu(catalog []Offering) string {
	return p.ServiceMenuHeader + p.menu(p.offeringItems(catalog))
}

// TimeMenu "Välj tid: Tryck 1 för Måndag 10:00, ... Tryck 9 för att upprepa."
func (p Prompts) TimeMenu(slots []string) string {
	return p.TimeMenuHeader + p.menu(slots)
}

func (p Prompts) menu(items []string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf(p.MenuItem, strconv.Itoa(i+1), item)
	}
	return p.MenuItemPrefix + strings.Join(parts, ", ") + ". " + p.Repeat
}

// choices "1, 2 eller 3"
func (p Prompts) choices(n int) string {
	if n <= 1 {
		return "1"
	}
	nums := make([]string, n)
	for i := range nums {
		nums[i] = strconv.Itoa(i + 1)
	}
	return strings.Join(nums[:n-1], ", ") + p.MenuConjunction + nums[n-1]
}
