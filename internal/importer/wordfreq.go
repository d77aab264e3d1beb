package importer

import (
	"archive/zip"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/ugorji/go/codec"

	"github.com/verte-zerg/xword/internal/model"
	"github.com/verte-zerg/xword/internal/wordlist"
)

var pypiEndpoint = "https://pypi.org/pypi/wordfreq/json"

// Wheel describes a cached wordfreq wheel.
type Wheel struct {
	Version  string
	Path     string
	Filename string
	Cached   bool
}

type pypiURL struct {
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Packagetype string `json:"packagetype"`
}

type pypiResponse struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
	URLs []pypiURL `json:"urls"`
}

// DownloadLatestWheel fetches the latest wordfreq wheel into cacheDir. A
// wheel already in the cache is reused.
func DownloadLatestWheel(ctx context.Context, cacheDir string) (Wheel, error) {
	if cacheDir == "" {
		return Wheel{}, fmt.Errorf("cache directory is required")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return Wheel{}, fmt.Errorf("failed to create cache dir: %w", err)
	}

	resp, err := httpRequest(ctx, pypiEndpoint)
	if err != nil {
		return Wheel{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return Wheel{}, fmt.Errorf("unexpected pypi status: %s", resp.Status)
	}

	var payload pypiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Wheel{}, fmt.Errorf("failed to decode pypi response: %w", err)
	}
	if payload.Info.Version == "" {
		return Wheel{}, fmt.Errorf("missing version in pypi response")
	}

	url, filename := pickWheelURL(payload.URLs)
	if url == "" || filename == "" {
		return Wheel{}, fmt.Errorf("no suitable wordfreq wheel found")
	}

	destPath := filepath.Join(cacheDir, filename)
	if _, err := os.Stat(destPath); err == nil {
		return Wheel{Version: payload.Info.Version, Path: destPath, Filename: filename, Cached: true}, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return Wheel{}, fmt.Errorf("failed to stat cached wheel: %w", err)
	}

	tmpFile, err := os.CreateTemp(cacheDir, "wordfreq-*.whl")
	if err != nil {
		return Wheel{}, fmt.Errorf("failed to create temp wheel: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	wheelResp, err := httpRequest(ctx, url)
	if err != nil {
		return Wheel{}, err
	}
	defer func() {
		_ = wheelResp.Body.Close()
	}()
	if wheelResp.StatusCode != http.StatusOK {
		return Wheel{}, fmt.Errorf("unexpected wheel status: %s", wheelResp.Status)
	}

	if _, err := io.Copy(tmpFile, wheelResp.Body); err != nil {
		return Wheel{}, fmt.Errorf("failed to download wheel: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return Wheel{}, fmt.Errorf("failed to close temp wheel: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return Wheel{}, fmt.Errorf("failed to move wheel into cache: %w", err)
	}
	return Wheel{Version: payload.Info.Version, Path: destPath, Filename: filename}, nil
}

func httpRequest(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func pickWheelURL(urls []pypiURL) (string, string) {
	for _, u := range urls {
		if u.Packagetype == "bdist_wheel" && strings.HasSuffix(u.Filename, "py3-none-any.whl") {
			return u.URL, u.Filename
		}
	}
	for _, u := range urls {
		if u.Packagetype == "bdist_wheel" {
			return u.URL, u.Filename
		}
	}
	return "", ""
}

// Languages returns the language codes with a list of the given size
// ("large" or "small") in the wheel.
func Languages(wheelPath, size string) ([]string, error) {
	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	prefix := "wordfreq/data/" + strings.ToLower(size) + "_"
	var langs []string
	for _, file := range reader.File {
		name := strings.ToLower(file.Name)
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		lang := trimMsgpackSuffix(strings.TrimPrefix(name, prefix))
		if lang != "" {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	return slices.Compact(langs), nil
}

func trimMsgpackSuffix(name string) string {
	for _, suffix := range []string{".msgpack.gz", ".msgpack"} {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return ""
}

// Wordfreq reads the most frequent alphabetic words for lang from a
// wordfreq wheel. Each frequency bucket is converted to a Zipf value and
// then to a 1..100 score.
func Wordfreq(wheelPath, lang, size string, limit int) ([]model.ScoredWord, error) {
	if wheelPath == "" {
		return nil, fmt.Errorf("wheel path is required")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}
	lang = strings.ToLower(strings.TrimSpace(lang))
	size = strings.ToLower(strings.TrimSpace(size))

	buckets, err := readBuckets(wheelPath, lang, size)
	if err != nil {
		return nil, err
	}

	var entries []model.ScoredWord
	seen := map[string]struct{}{}
	for i, bucket := range buckets {
		score := zipfScore(i)
		for _, word := range bucket {
			if !isAlpha(word) {
				continue
			}
			word = wordlist.Normalize(word)
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			entries = append(entries, model.ScoredWord{Word: word, Score: score})
			if len(entries) >= limit {
				return entries, nil
			}
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no words found for %s/%s", lang, size)
	}
	return entries, nil
}

// zipfScore maps a centibel bucket index to a word list score. Bucket i
// holds words with frequency 10^(-i/100), which is Zipf 9 - i/100.
func zipfScore(bucket int) int {
	zipf := float64(900-bucket) / 100
	score := int(math.Round(zipf * 10))
	return max(1, min(100, score))
}

func readBuckets(wheelPath, lang, size string) ([][]string, error) {
	reader, err := zip.OpenReader(wheelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open wheel: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	base := "wordfreq/data/" + size + "_" + lang
	var dataFile *zip.File
	for _, file := range reader.File {
		name := strings.ToLower(file.Name)
		if name == base+".msgpack.gz" || name == base+".msgpack" {
			dataFile = file
			break
		}
	}
	if dataFile == nil {
		return nil, fmt.Errorf("no data file found for %s/%s", lang, size)
	}

	rc, err := dataFile.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()

	var r io.Reader = rc
	if strings.HasSuffix(strings.ToLower(dataFile.Name), ".gz") {
		gr, err := gzip.NewReader(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer func() {
			_ = gr.Close()
		}()
		r = gr
	}
	return decodeCBPack(r)
}

// decodeCBPack decodes a wordfreq frequency pack: a header map followed by
// one list of words per centibel bucket, most frequent first.
func decodeCBPack(r io.Reader) ([][]string, error) {
	handle := &codec.MsgpackHandle{}
	handle.RawToString = true

	var payload []interface{}
	if err := codec.NewDecoder(r, handle).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode wordfreq data: %w", err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("wordfreq data contained no entries")
	}
	if err := checkHeader(payload[0]); err != nil {
		return nil, err
	}

	buckets := make([][]string, 0, len(payload)-1)
	for i, item := range payload[1:] {
		words, ok := toStringSlice(item)
		if !ok {
			return nil, fmt.Errorf("unsupported wordfreq bucket %d of type %T", i, item)
		}
		buckets = append(buckets, words)
	}
	return buckets, nil
}

func checkHeader(v interface{}) error {
	header, ok := v.(map[interface{}]interface{})
	if !ok {
		return fmt.Errorf("unsupported wordfreq header of type %T", v)
	}
	for key, value := range header {
		k, _ := toString(key)
		if k != "format" {
			continue
		}
		if format, _ := toString(value); format != "cB" {
			return fmt.Errorf("unsupported wordfreq format %q", format)
		}
	}
	return nil
}

func toString(v interface{}) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case []byte:
		return string(val), true
	default:
		return "", false
	}
}

func toStringSlice(v interface{}) ([]string, bool) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		str, ok := toString(item)
		if !ok {
			return nil, false
		}
		out = append(out, str)
	}
	return out, true
}

func isAlpha(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return word != ""
}
