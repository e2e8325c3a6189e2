package crossref

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

var bucketWorks = []byte("works")

// Cache is a DOI-keyed BoltDB cache of Crossref work metadata.
type Cache struct {
	db *bbolt.DB
}

func NewCache(path string) (*Cache, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open crossref cache: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketWorks)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create works bucket: %w", err)
	}

	return &Cache{db: db}, nil
}

func (c *Cache) Get(doi string) (*Work, bool) {
	var work *Work
	c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketWorks).Get([]byte(doi))
		if data == nil {
			return nil
		}
		var w Work
		if err := json.Unmarshal(data, &w); err != nil {
			return nil // Skip corrupted entries
		}
		work = &w
		return nil
	})
	return work, work != nil
}

func (c *Cache) Put(doi string, work *Work) error {
	data, err := json.Marshal(work)
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketWorks).Put([]byte(doi), data)
	})
}

func (c *Cache) Close() error {
	return c.db.Close()
}
