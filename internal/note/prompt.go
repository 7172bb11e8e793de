package note

import (
	"fmt"
	"strconv"
	"strings"
)

// noteSchemaInstructions pins the JSON shape the model must return.
const noteSchemaInstructions = `Generate a complete daily note with:
1. **Executive Summary**: Today's theme, critical path, and key metrics snapshot
2. **Schedule**: Organized time blocks with maker/manager categorization
3. **Decisions**: Surface any decisions that need to be made today
4. **Strategic Guidance**: Coaching prompt and recommendations based on patterns
5. **Problems**: Any issues to address (from recent problems or calendar analysis)
6. **Wins**: Celebrate recent wins and add any anticipated wins for today

Return as JSON with the following structure:
{
  "executiveSummary": {
    "theme": "string",
    "criticalPath": "string",
    "keyMetrics": {}
  },
  "schedule": [],
  "decisions": {
    "highStakes": [],
    "lowStakes": []
  },
  "strategicGuidance": {
    "coachingPrompt": "string",
    "recommendations": [],
    "recommendedResources": []
  },
  "problems": [],
  "wins": []
}`

// BuildDailyNotePrompt renders the user prompt for one note generation.
func BuildDailyNotePrompt(in NoteInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a daily founder's note for %s at %s.\n\n", in.FounderName, in.Company)
	fmt.Fprintf(&b, "**Date**: %s\n\n", in.Date)

	fmt.Fprintf(&b, "**Today's Calendar** (%d events):\n", len(in.CalendarEvents))
	for _, e := range in.CalendarEvents {
		fmt.Fprintf(&b, "- %s - %s: %s [%s]", e.StartTime, e.EndTime, e.Title, e.Type)
		if e.Attendees > 0 {
			fmt.Fprintf(&b, " (%d attendees)", e.Attendees)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "**Active Tasks** (%d tasks):\n", len(in.Tasks))
	for _, t := range in.Tasks {
		fmt.Fprintf(&b, "- [%s] %s - Priority: %s, Context: %s", t.Status, t.Title, t.Priority, t.Context)
		if t.DueDate != "" {
			fmt.Fprintf(&b, ", Due: %s", t.DueDate)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	if m := in.Metrics; m != nil {
		b.WriteString("**Company Metrics**:\n")
		fmt.Fprintf(&b, "- Runway: %s months\n", formatFloat(m.RunwayMonths))
		fmt.Fprintf(&b, "- MRR: $%s\n", formatFloat(m.MRR))
		fmt.Fprintf(&b, "- Users: %s\n", formatInt(m.Users))
		fmt.Fprintf(&b, "- Burn Rate: $%s/month\n", formatFloat(m.BurnRate))
		fmt.Fprintf(&b, "- Team Size: %s\n\n", formatInt(m.TeamSize))
	}

	if len(in.RecentWins) > 0 {
		b.WriteString("**Recent Wins**:\n")
		for _, w := range in.RecentWins {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteByte('\n')
	}

	if len(in.RecentProblems) > 0 {
		b.WriteString("**Recent Problems**:\n")
		for _, p := range in.RecentProblems {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteByte('\n')
	}

	if len(in.RecentDecisions) > 0 {
		b.WriteString("**Recent Decisions**:\n")
		for _, d := range in.RecentDecisions {
			fmt.Fprintf(&b, "- %s [%s]\n", d.Title, d.Status)
		}
		b.WriteByte('\n')
	}

	b.WriteString(noteSchemaInstructions)
	return b.String()
}

func formatFloat(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return groupThousands(strconv.FormatFloat(*v, 'f', -1, 64))
}

func formatInt(v *int) string {
	if v == nil {
		return "N/A"
	}
	return groupThousands(strconv.Itoa(*v))
}

// groupThousands inserts comma separators into the integer part of a decimal
// number string, e.g. "12500.5" -> "12,500.5".
func groupThousands(s string) string {
	intPart, rest := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, rest = s[:i], s[i:]
	}
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	if len(intPart) <= 3 {
		if neg {
			intPart = "-" + intPart
		}
		return intPart + rest
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + rest
}
