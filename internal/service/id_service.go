package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hms-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Human-readable identifiers are a prefix naming a period bucket plus a
// 4-digit serial:
//
//	UHID    PAMCH-25-JUL-0004   (facility code, month bucket)
//	OPD no  OPD-20250115-0012   (day bucket)
//	IPD no  IPD-20250115-0003   (day bucket)
//
// The serial comes from an id_sequences counter row incremented with an
// atomic upsert, so two concurrent registrations in the same bucket can
// never be handed the same number.

const serialWidth = 4

var trailingSerial = regexp.MustCompile(`(\d{4})$`)

// nextSerialQuery bumps the bucket counter and returns the new value in a
// single statement. The ON CONFLICT arm makes first-use initialization
// and increment the same round trip.
const nextSerialQuery = `
INSERT INTO id_sequences (bucket, last_value, updated_at)
VALUES (?, 1, NOW())
ON CONFLICT (bucket) DO UPDATE
SET last_value = id_sequences.last_value + 1, updated_at = NOW()
RETURNING last_value`

// seedSerialQuery raises the bucket counter to at least the given value.
// Used once per bucket when rows predating the sequence table exist.
const seedSerialQuery = `
INSERT INTO id_sequences (bucket, last_value, updated_at)
VALUES (?, ?, NOW())
ON CONFLICT (bucket) DO UPDATE
SET last_value = GREATEST(id_sequences.last_value, EXCLUDED.last_value), updated_at = NOW()`

type IDService struct {
	log          *logrus.Logger
	facilityCode string
}

func NewIDService(log *logrus.Logger, facilityCode string) *IDService {
	return &IDService{
		log:          log,
		facilityCode: facilityCode,
	}
}

// NextUHID issues the next patient identifier for the month bucket of now.
func (s *IDService) NextUHID(tx *gorm.DB, now time.Time) (string, error) {
	return s.next(tx, UHIDPrefix(s.facilityCode, now))
}

// NextOPDNo issues the next OPD visit number for the day bucket of now.
func (s *IDService) NextOPDNo(tx *gorm.DB, now time.Time) (string, error) {
	return s.next(tx, OPDPrefix(now))
}

// NextIPDNo issues the next IPD admission number for the day bucket of now.
func (s *IDService) NextIPDNo(tx *gorm.DB, now time.Time) (string, error) {
	return s.next(tx, IPDPrefix(now))
}

func (s *IDService) next(tx *gorm.DB, prefix string) (string, error) {
	var serial int
	if err := tx.Raw(nextSerialQuery, prefix).Scan(&serial).Error; err != nil {
		s.log.Warnf("Failed to advance id sequence for bucket %s: %+v", prefix, err)
		return "", fmt.Errorf("advance id sequence %q: %w", prefix, err)
	}
	return FormatID(prefix, serial), nil
}

// SeedBucket raises a bucket counter to cover identifiers that already
// exist in the data, so sequence-issued numbers continue after them.
func (s *IDService) SeedBucket(tx *gorm.DB, prefix string, existing []string) error {
	max := MaxSuffix(existing)
	if max == 0 {
		return nil
	}
	if err := tx.Exec(seedSerialQuery, prefix, max).Error; err != nil {
		s.log.Warnf("Failed to seed id sequence for bucket %s: %+v", prefix, err)
		return fmt.Errorf("seed id sequence %q: %w", prefix, err)
	}
	return nil
}

// SeedCurrentBuckets aligns the UHID, OPD and IPD buckets for now with
// identifiers already present in the data. Run once at startup so numbers
// issued from the sequence table continue after rows imported before the
// counters existed.
func (s *IDService) SeedCurrentBuckets(
	db *gorm.DB,
	patients repository.PatientRepository,
	visits repository.OPDVisitRepository,
	admissions repository.AdmissionRepository,
	now time.Time,
) error {
	uhidPrefix := UHIDPrefix(s.facilityCode, now)
	uhids, err := patients.UHIDsWithPrefix(db, uhidPrefix)
	if err != nil {
		return err
	}
	if err := s.SeedBucket(db, uhidPrefix, uhids); err != nil {
		return err
	}

	opdPrefix := OPDPrefix(now)
	opdNos, err := visits.NumbersWithPrefix(db, opdPrefix)
	if err != nil {
		return err
	}
	if err := s.SeedBucket(db, opdPrefix, opdNos); err != nil {
		return err
	}

	ipdPrefix := IPDPrefix(now)
	ipdNos, err := admissions.NumbersWithPrefix(db, ipdPrefix)
	if err != nil {
		return err
	}
	return s.SeedBucket(db, ipdPrefix, ipdNos)
}

// UHIDPrefix builds the month bucket prefix, e.g. "PAMCH-25-JUL-".
func UHIDPrefix(facilityCode string, t time.Time) string {
	return fmt.Sprintf("%s-%s-%s-", facilityCode, t.Format("06"), strings.ToUpper(t.Format("Jan")))
}

// OPDPrefix builds the day bucket prefix, e.g. "OPD-20250115-".
func OPDPrefix(t time.Time) string {
	return fmt.Sprintf("OPD-%s-", t.Format("20060102"))
}

// IPDPrefix builds the day bucket prefix, e.g. "IPD-20250115-".
func IPDPrefix(t time.Time) string {
	return fmt.Sprintf("IPD-%s-", t.Format("20060102"))
}

// FormatID appends the zero-padded serial to the bucket prefix.
func FormatID(prefix string, serial int) string {
	return fmt.Sprintf("%s%0*d", prefix, serialWidth, serial)
}

// MaxSuffix scans identifiers for the highest trailing 4-digit serial,
// returning 0 when none match.
func MaxSuffix(ids []string) int {
	max := 0
	for _, id := range ids {
		m := trailingSerial.FindStringSubmatch(id)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}

// NextFromExisting derives the next identifier purely from rows already
// present, the way the pre-sequence data did it. Kept for seeding and for
// documenting the old scan-then-increment behavior; new identifiers go
// through the sequence table instead.
func NextFromExisting(prefix string, existing []string) string {
	return FormatID(prefix, MaxSuffix(existing)+1)
}
