package testsupport

import (
	"context"
	"sync"
)

// Uploader records uploads in memory.
type Uploader struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Err     error
}

func NewUploader() *Uploader {
	return &Uploader{Objects: map[string][]byte{}}
}

func (u *Uploader) Upload(_ context.Context, key string, body []byte, _ string) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.Err != nil {
		return "", u.Err
	}
	u.Objects[key] = append([]byte(nil), body...)
	return "https://cdn.test/" + key, nil
}
