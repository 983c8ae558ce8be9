package hypixel

import "skyblock-backend/lib/restyutil"

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput enables request/response dumping on clients
// created after the call. Used for debugging scrape sessions.
func SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	restyInstrumentOutput = output
}
