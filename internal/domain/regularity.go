package domain

import "time"

// CauseCount - число процентных колонок причин задержек
const CauseCount = 6

// RegularityRecord - месячная статистика пунктуальности по маршруту.
// Сумма процентов причин должна быть около 100, но не проверяется
type RegularityRecord struct {
	Month           *time.Time
	Origin          string
	Destination     string
	AvgArrivalDelay *float64
	Cancellations   *float64
	LateDepartures  *float64
	LateArrivals    *float64
	Causes          [CauseCount]*float64
}

type RegularityColumns struct {
	Date            string
	Origin          string
	Destination     string
	AvgArrivalDelay string
	Cancellations   string
	LateDepartures  string
	LateArrivals    string
	Causes          [CauseCount]string
}

// Required - колонки, общие для всех представлений пунктуальности.
// Колонки причин нужны только разбивке по причинам
func (c RegularityColumns) Required() []string {
	return []string{
		c.Date, c.Origin, c.Destination, c.AvgArrivalDelay,
		c.Cancellations, c.LateDepartures, c.LateArrivals,
	}
}

// DefaultRegularityColumns - колонки файла regularite-mensuelle-tgv-aqst.csv
var DefaultRegularityColumns = RegularityColumns{
	Date:            "date",
	Origin:          "gare_depart",
	Destination:     "gare_arrivee",
	AvgArrivalDelay: "retard_moyen_arrivee",
	Cancellations:   "nb_annulation",
	LateDepartures:  "nb_train_depart_retard",
	LateArrivals:    "nb_train_retard_arrivee",
	Causes: [CauseCount]string{
		"prct_cause_externe",
		"prct_cause_infra",
		"prct_cause_gestion_trafic",
		"prct_cause_materiel_roulant",
		"prct_cause_gestion_gare",
		"prct_cause_prise_en_charge_voyageurs",
	},
}
