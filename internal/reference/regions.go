package reference

import "sort"

// UnknownRegion is returned for department codes outside the metropolitan table.
const UnknownRegion = "Unknown Region"

// DefaultColor is used for regions and line categories without a color.
const DefaultColor = "black"

const (
	regionARA  = "Auvergne-Rhône-Alpes"
	regionBFC  = "Bourgogne-Franche-Comté"
	regionBRE  = "Bretagne"
	regionCVL  = "Centre-Val de Loire"
	regionCOR  = "Corse"
	regionGES  = "Grand Est"
	regionHDF  = "Hauts-de-France"
	regionIDF  = "Île-de-France"
	regionNOR  = "Normandie"
	regionNAQ  = "Nouvelle-Aquitaine"
	regionOCC  = "Occitanie"
	regionPDL  = "Pays de la Loire"
	regionPACA = "Provence-Alpes-Côte d'Azur"
)

var departmentToRegion = map[string]string{
	"01": regionARA, "02": regionHDF, "03": regionARA, "04": regionPACA, "05": regionPACA,
	"06": regionPACA, "07": regionARA, "08": regionGES, "09": regionOCC, "10": regionGES,
	"11": regionOCC, "12": regionOCC, "13": regionPACA, "14": regionNOR, "15": regionARA,
	"16": regionNAQ, "17": regionNAQ, "18": regionCVL, "19": regionNAQ, "20": regionCOR,
	"2A": regionCOR, "2B": regionCOR, "21": regionBFC, "22": regionBRE, "23": regionNAQ,
	"24": regionNAQ, "25": regionBFC, "26": regionARA, "27": regionNOR, "28": regionCVL,
	"29": regionBRE, "30": regionOCC, "31": regionOCC, "32": regionOCC, "33": regionNAQ,
	"34": regionOCC, "35": regionBRE, "36": regionCVL, "37": regionCVL, "38": regionARA,
	"39": regionBFC, "40": regionNAQ, "41": regionCVL, "42": regionARA, "43": regionARA,
	"44": regionPDL, "45": regionCVL, "46": regionOCC, "47": regionNAQ, "48": regionOCC,
	"49": regionPDL, "50": regionNOR, "51": regionGES, "52": regionGES, "53": regionPDL,
	"54": regionGES, "55": regionGES, "56": regionBRE, "57": regionGES, "58": regionBFC,
	"59": regionHDF, "60": regionHDF, "61": regionNOR, "62": regionHDF, "63": regionARA,
	"64": regionNAQ, "65": regionOCC, "66": regionOCC, "67": regionGES, "68": regionGES,
	"69": regionARA, "70": regionBFC, "71": regionBFC, "72": regionPDL, "73": regionARA,
	"74": regionARA, "75": regionIDF, "76": regionNOR, "77": regionIDF, "78": regionIDF,
	"79": regionNAQ, "80": regionHDF, "81": regionOCC, "82": regionOCC, "83": regionPACA,
	"84": regionPACA, "85": regionPDL, "86": regionNAQ, "87": regionNAQ, "88": regionGES,
	"89": regionBFC, "90": regionBFC, "91": regionIDF, "92": regionIDF, "93": regionIDF,
	"94": regionIDF, "95": regionIDF,
}

var regionColors = map[string]string{
	regionARA:  "blue",
	regionBFC:  "green",
	regionBRE:  "red",
	regionCVL:  "purple",
	regionCOR:  "orange",
	regionGES:  "darkred",
	regionHDF:  "lightred",
	regionIDF:  "beige",
	regionNOR:  "darkblue",
	regionNAQ:  "darkgreen",
	regionOCC:  "cadetblue",
	regionPDL:  "lightgreen",
	regionPACA: "lightblue",
}

var sortedRegions = func() []string {
	out := make([]string, 0, len(regionColors))
	for r := range regionColors {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}()

// RegionForDepartment maps a two-character department code to its region.
// Codes outside the table, overseas departments included, yield UnknownRegion.
func RegionForDepartment(code string) string {
	if r, ok := departmentToRegion[code]; ok {
		return r
	}
	return UnknownRegion
}

// ColorForRegion returns the display color of a region, DefaultColor if none.
func ColorForRegion(region string) string {
	if c, ok := regionColors[region]; ok {
		return c
	}
	return DefaultColor
}

// Regions returns the known region names sorted alphabetically.
func Regions() []string {
	out := make([]string, len(sortedRegions))
	copy(out, sortedRegions)
	return out
}

// RegionLegend returns region/color pairs in alphabetical region order.
func RegionLegend() [][2]string {
	out := make([][2]string, 0, len(sortedRegions))
	for _, r := range sortedRegions {
		out = append(out, [2]string{r, regionColors[r]})
	}
	return out
}
