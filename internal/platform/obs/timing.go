package obs

import (
	"context"
	"log"
	"time"
)

// Time starts a timer for the named operation. The returned func logs the
// elapsed time and, when errp points at a non-nil error, that error too:
//
//	defer obs.Time(ctx, "itinerary.ApplyEdit")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
