// Package store keeps records and analysis reports in a bolt database.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/Davydov/bioseq/report"
	"bitbucket.org/Davydov/bioseq/sequence"
)

// log is the global logging variable.
var log = logging.MustGetLogger("store")

var (
	// RECORDS is the bucket name for records.
	RECORDS = []byte("records")
	// REPORTS is the bucket name for reports.
	REPORTS = []byte("reports")
)

// key returns the database key for a label. Bolt doesn't allow empty
// keys, records without a label are stored as sequence.DefaultLabel.
func key(label string) []byte {
	if label == "" {
		label = sequence.DefaultLabel
	}
	return []byte(label)
}

// Store saves records and reports, the record label is the key.
type Store struct {
	db *bolt.DB
}

// Open opens or creates a database file.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("error opening store %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRecord saves a record, a record with the same label is
// overwritten.
func (s *Store) SaveRecord(r sequence.Record) error {
	b, err := json.Marshal(r)
	if err != nil {
		log.Error("Error serializing record", err)
		return err
	}
	err = saveData(s.db, RECORDS, key(r.Label()), b)
	if err != nil {
		log.Error("Error saving record", err)
	}
	return err
}

// LoadRecord loads a record by label. The stored sequence is
// validated again.
func (s *Store) LoadRecord(label string) (sequence.Record, bool, error) {
	b, err := loadData(s.db, RECORDS, key(label))
	if err != nil || b == nil {
		return sequence.Record{}, false, err
	}
	r, err := sequence.FromJSON(b)
	if err != nil {
		return sequence.Record{}, false, err
	}
	log.Debugf("Loaded record %s (%d symbols)", label, r.Len())
	return r, true, nil
}

// SaveReport saves a report under the label of its record.
func (s *Store) SaveReport(rep *report.Report) error {
	b, err := json.Marshal(rep)
	if err != nil {
		log.Error("Error serializing report", err)
		return err
	}
	err = saveData(s.db, REPORTS, key(rep.Record.Label()), b)
	if err != nil {
		log.Error("Error saving report", err)
	}
	return err
}

// LoadReport loads a report, nil is returned if there is no report
// for the label.
func (s *Store) LoadReport(label string) (*report.Report, error) {
	b, err := loadData(s.db, REPORTS, key(label))
	if err != nil || b == nil {
		return nil, err
	}
	var rep *report.Report
	if err := json.Unmarshal(b, &rep); err != nil {
		return nil, err
	}
	log.Noticef("Found report for %s (%d proteins)", label, len(rep.Proteins))
	return rep, nil
}

// Labels returns labels of all the stored records.
func (s *Store) Labels() ([]string, error) {
	var labels []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(RECORDS)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			labels = append(labels, string(k))
			return nil
		})
	})
	return labels, err
}

// saveData saves values in bolt database.
func saveData(db *bolt.DB, bucket, key, data []byte) error {
	if db == nil {
		return nil
	}
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucket)
		if err != nil {
			return err
		}

		err = b.Put(key, data)
		return err
	})
	return err
}

// loadData loads data from bolt database, nil is returned for a
// missing key.
func loadData(db *bolt.DB, bucket, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			data = append(make([]byte, 0, len(v)), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
