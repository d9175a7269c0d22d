package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Individual walks must not collide with group walks. Each group slot,
// padded by GroupWalkBufferMinutes on both sides, is off limits for
// individual walk requests.
type restrictedRange struct {
	startMin int // minutes since midnight, inclusive
	endMin   int // inclusive
}

func (r restrictedRange) contains(min int) bool {
	return min >= r.startMin && min <= r.endMin
}

func (r restrictedRange) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		r.startMin/60, r.startMin%60, r.endMin/60, r.endMin%60)
}

func restrictedRanges() []restrictedRange {
	ranges := make([]restrictedRange, 0, len(AllSlots))
	for _, slot := range AllSlots {
		start, _ := slot.StartTime().Minutes()
		end, _ := slot.EndTime().Minutes()
		ranges = append(ranges, restrictedRange{
			startMin: start - GroupWalkBufferMinutes,
			endMin:   end + GroupWalkBufferMinutes,
		})
	}
	return ranges
}

// sanctionedPhrases are free-text categories that never name a concrete
// clock time, so they can always be accepted.
var sanctionedPhrases = []string{
	"early morning",
	"late afternoon",
	"evening",
	"flexible",
	"please suggest",
	"let us suggest",
}

// clockRe matches explicit clock times such as "10:00", "6.30pm", "10 am".
var clockRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?:[:.](\d{2}))?\s*(am|pm)?\b`)

// keywordTimes maps time-of-day words to a concrete minute of the day.
var keywordTimes = map[string]int{
	"noon":    12 * 60,
	"midday":  12 * 60,
	"mid-day": 12 * 60,
}

// CheckPreferredTime inspects the free-text preferred time of an
// individual walk request. It returns the restricted windows the text
// collides with, empty when the request is acceptable.
//
// Sanctioned category phrases are accepted without further parsing.
// Otherwise every recognizable time mention in the text is resolved to
// a minute of the day and checked against the restricted windows.
func CheckPreferredTime(text string) []string {
	lowered := strings.ToLower(text)
	for _, phrase := range sanctionedPhrases {
		if strings.Contains(lowered, phrase) {
			return nil
		}
	}

	ranges := restrictedRanges()
	seen := make(map[string]struct{})
	var conflicts []string

	addConflicts := func(minute int) {
		for _, r := range ranges {
			if r.contains(minute) {
				key := r.String()
				if _, ok := seen[key]; !ok {
					seen[key] = struct{}{}
					conflicts = append(conflicts, key)
				}
			}
		}
	}

	for word, minute := range keywordTimes {
		if strings.Contains(lowered, word) {
			addConflicts(minute)
		}
	}

	for _, m := range clockRe.FindAllStringSubmatch(lowered, -1) {
		minute, ok := parseClockMention(m[1], m[2], m[3])
		if !ok {
			continue
		}
		addConflicts(minute)
	}

	return conflicts
}

// parseClockMention converts a regex match into minutes since midnight.
// A bare number without minutes or an am/pm marker is too ambiguous to
// treat as a time mention ("2 dogs" must not parse as 02:00).
func parseClockMention(hourStr, minStr, meridiem string) (int, bool) {
	if minStr == "" && meridiem == "" {
		return 0, false
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour > 23 {
		return 0, false
	}
	min := 0
	if minStr != "" {
		min, err = strconv.Atoi(minStr)
		if err != nil || min > 59 {
			return 0, false
		}
	}

	switch meridiem {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 {
		return 0, false
	}

	return hour*60 + min, true
}
