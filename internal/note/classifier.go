package note

import dom "github.com/foundrylabs/daybrief/internal/domain"

// ClassifyDay labels a day from its calendar events. Rules fire in order:
//
//  1. no events, or two or more deep-work blocks  -> BUILD
//  2. three or more external/meeting events       -> SELL
//  3. two or fewer events total                   -> THINK
//  4. otherwise                                   -> BUILD
//
// REST exists in the DayType enumeration but no rule currently produces it.
func ClassifyDay(events []dom.CalendarEvent) dom.DayType {
	var meetings, deepWork int
	for _, e := range events {
		switch e.EventType {
		case dom.EventExternal, dom.EventMeeting:
			meetings++
		case dom.EventDeepWork:
			deepWork++
		}
	}

	switch {
	case len(events) == 0 || deepWork >= 2:
		return dom.DayBuild
	case meetings >= 3:
		return dom.DaySell
	case len(events) <= 2:
		return dom.DayThink
	default:
		return dom.DayBuild
	}
}
