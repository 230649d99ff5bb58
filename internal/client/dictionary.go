package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/DanRulev/vocamission.git/internal/models"
)

const dictionaryURL = "https://ftapi.pythonanywhere.com/translate"

// DictionaryAPI looks up pronunciation and usage examples for English words.
type DictionaryAPI struct {
	baseURL string
	http    *http.Client
}

func NewDictionaryAPI(timeout time.Duration) *DictionaryAPI {
	return &DictionaryAPI{
		baseURL: dictionaryURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (d *DictionaryAPI) Lookup(ctx context.Context, word string) (models.DictionaryEntry, error) {
	q := url.Values{}
	q.Set("sl", "en")
	q.Set("dl", "ko")
	q.Set("text", word)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return models.DictionaryEntry{}, err
	}
	resp, err := d.http.Do(req)
	if err != nil {
		return models.DictionaryEntry{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.DictionaryEntry{}, fmt.Errorf("dictionary lookup %q: status %d", word, resp.StatusCode)
	}

	var result models.DictionaryEntry
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.DictionaryEntry{}, fmt.Errorf("failed to decode dictionary entry: %v", word)
	}

	return result, nil
}
