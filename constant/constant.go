package constant

const (
	SEAT_PLAN_URL = "https://pathe.ch/vistafr/wsvistawebclient/restdata.svc/cinemas/%s/Sessions/%s/seat-plan"

	// DOM hooks of the Vista booking page
	SEAT_SELECTOR = ".a-seat"
	SEAT_ID_ATTR  = "data-id"

	LOOKUP_LOG_FILE = "seat_lookups.log"
	SCHEMA_FILE     = "db/schema.sql"
)
