// Package holiday loads public holiday calendars from ICS and YAML files.
package holiday

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/attendance-reminder-bot/internal/domain/worktime"
	"gopkg.in/yaml.v3"
)

const icsDateLayout = "20060102"

// maxEventDays caps the dates produced by one VEVENT.
const maxEventDays = 31

var ErrUnsupportedFormat = errors.New("unsupported holiday file format")

type yamlFile struct {
	Holidays []yamlHoliday `yaml:"holidays"`
}

type yamlHoliday struct {
	Date        string `yaml:"date"`
	NameLocal   string `yaml:"name_local"`
	NameEnglish string `yaml:"name_english"`
	Kind        string `yaml:"kind"`
}

// LoadFile picks the parser from the file extension.
func LoadFile(path string) ([]*entity.Holiday, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ics", ".ical":
		return ParseICS(f)
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseICS turns every all-day VEVENT into one holiday per covered date.
// DTEND is exclusive; a missing DTEND means a single day. Timed events are
// ignored.
func ParseICS(r io.Reader) ([]*entity.Holiday, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar: %w", err)
	}

	var holidays []*entity.Holiday
	for _, ev := range cal.Events() {
		start, ok := allDayDate(ev.GetProperty(ical.ComponentPropertyDtStart))
		if !ok {
			continue
		}
		end, ok := allDayDate(ev.GetProperty(ical.ComponentPropertyDtEnd))
		if !ok || !start.Before(end) {
			end = start.AddDays(1)
		}

		name := ""
		if p := ev.GetProperty(ical.ComponentPropertySummary); p != nil {
			name = strings.TrimSpace(p.Value)
		}
		kind := domain.DefaultHolidayKind
		if p := ev.GetProperty(ical.ComponentPropertyCategories); p != nil {
			if first, _, _ := strings.Cut(p.Value, ","); strings.TrimSpace(first) != "" {
				kind = strings.ToLower(strings.TrimSpace(first))
			}
		}

		for d, n := start, 0; d.Before(end) && n < maxEventDays; d, n = d.AddDays(1), n+1 {
			holidays = append(holidays, &entity.Holiday{
				Date:        d,
				NameEnglish: name,
				Kind:        kind,
			})
		}
	}
	return holidays, nil
}

// allDayDate reads the date straight from the property value so the result
// does not depend on the process time zone.
func allDayDate(p *ical.IANAProperty) (worktime.Date, bool) {
	if p == nil {
		return worktime.Date{}, false
	}
	value := strings.TrimSpace(p.Value)
	if len(value) != len(icsDateLayout) {
		return worktime.Date{}, false
	}
	t, err := time.Parse(icsDateLayout, value)
	if err != nil {
		return worktime.Date{}, false
	}
	return worktime.DateOf(t), true
}

func ParseYAML(r io.Reader) ([]*entity.Holiday, error) {
	var file yamlFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode holiday yaml: %w", err)
	}

	holidays := make([]*entity.Holiday, 0, len(file.Holidays))
	for i, h := range file.Holidays {
		date, err := worktime.ParseDate(strings.TrimSpace(h.Date))
		if err != nil {
			return nil, fmt.Errorf("holiday #%d: %w", i+1, err)
		}
		if h.NameLocal == "" && h.NameEnglish == "" {
			return nil, fmt.Errorf("holiday #%d (%s): a name is required", i+1, date)
		}
		kind := strings.ToLower(strings.TrimSpace(h.Kind))
		if kind == "" {
			kind = domain.DefaultHolidayKind
		}
		holidays = append(holidays, &entity.Holiday{
			Date:        date,
			NameLocal:   h.NameLocal,
			NameEnglish: h.NameEnglish,
			Kind:        kind,
		})
	}
	return holidays, nil
}

// Import upserts every holiday in one transaction, so a failing record leaves
// the calendar untouched.
func Import(ctx context.Context, dm contract.DataManager, holidays []*entity.Holiday) (int, error) {
	err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, h := range holidays {
			if err := tx.Holiday().Upsert(ctx, h); err != nil {
				return fmt.Errorf("failed to store holiday %s: %w", h.Date, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(holidays), nil
}
