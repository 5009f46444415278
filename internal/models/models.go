package models

// All enumerates every persisted model in migration order, so that
// foreign key targets are created before their referrers.
var All = []interface{}{
	&Venue{},
	&Artist{},
	&Show{},
	&Category{},
	&Question{},
	&Drink{},
	&NodeGroup{},
	&Node{},
}
