package translit

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	perr "scriptdrill/internal/platform/errors"
	"scriptdrill/internal/platform/logger"
)

const (
	remoteTimeoutDefault   = 10 * time.Second
	remoteUA               = "scriptdrill-api"
	remoteMaxRetryDefault  = 3
	remoteRetryBaseDefault = 250 * time.Millisecond
	remoteMaxBody          = 4 << 20
	remoteMaxWait          = 5 * time.Second
	// batches are sent as newline joined text, chunked to keep the query string short
	remoteChunkBytes = 1800
)

// aksharamukhaNames maps ISO 15924 tags to the script names the API expects.
// Tags not listed (Syre, Burmese, ISO, IAST, ...) are already API names
var aksharamukhaNames = map[string]string{
	"Beng": "Bengali",
	"Deva": "Devanagari",
	"Gujr": "Gujarati",
	"Guru": "Gurmukhi",
	"Knda": "Kannada",
	"Latn": "ISO",
	"Mlym": "Malayalam",
	"Mymr": "Burmese",
	"Orya": "Oriya",
	"Sinh": "Sinhala",
	"Taml": "Tamil",
	"Telu": "Telugu",
	"Thai": "Thai",
	"Tibt": "Tibetan",
	"Arab": "Arab",
	"Hebr": "Hebrew",
	"Grek": "Greek",
	"Cyrl": "RussianCyrillic",
}

// remoteExtraNames are Aksharamukha script names accepted as is
var remoteExtraNames = []string{
	"Syre", "Syrj", "Syrn", "Avestan", "Urdu", "Thaana", "Sharada", "Grantha",
	"Siddham", "Brahmi", "Khmer", "Lao", "Balinese", "Javanese", "Tirhuta",
}

// DefaultRemoteTags is what a Remote accepts when RemoteOptions.Tags is empty:
// the mapped ISO codes, their API names, the extra names and the romanization schemes
func DefaultRemoteTags() []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(t string) {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	for code, name := range aksharamukhaNames {
		add(code)
		add(name)
	}
	for _, t := range remoteExtraNames {
		add(t)
	}
	for _, t := range latinSchemes {
		add(t)
	}
	slices.Sort(out)
	return out
}

// APIName returns the Aksharamukha name for tag
func APIName(tag string) string {
	if n, ok := aksharamukhaNames[tag]; ok {
		return n
	}
	return tag
}

// RemoteOptions configures Remote
type RemoteOptions struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
	// Tags restricts accepted scripts; empty means DefaultRemoteTags
	Tags []string
}

// Remote calls an Aksharamukha-compatible HTTP API: GET {base}/api/public?source=&target=&text=
type Remote struct {
	http *http.Client
	opts RemoteOptions
	tags map[string]struct{}
	log  *logger.Logger
	wait func(ctx context.Context, d time.Duration) error
}

// NewRemote creates a Remote with defaults filled in
func NewRemote(o RemoteOptions) *Remote {
	if o.Timeout <= 0 {
		o.Timeout = remoteTimeoutDefault
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = remoteMaxRetryDefault
	}
	if o.RetryBase <= 0 {
		o.RetryBase = remoteRetryBaseDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	r := &Remote{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  logger.Named("translit.remote"),
		wait: sleepCtx,
	}
	if len(o.Tags) == 0 {
		o.Tags = DefaultRemoteTags()
	}
	r.tags = make(map[string]struct{}, len(o.Tags))
	for _, t := range o.Tags {
		r.tags[t] = struct{}{}
	}
	return r
}

// Name implements Engine
func (*Remote) Name() string { return "remote" }

// Supports implements Engine
func (r *Remote) Supports(tag string) bool {
	_, ok := r.tags[tag]
	return ok
}

// Converter implements Engine
func (r *Remote) Converter(_ context.Context, p Pair) (Converter, error) {
	return &remoteConverter{r: r, source: APIName(p.From), target: APIName(p.To)}, nil
}

// Ping converts a single letter to prove the service answers
func (r *Remote) Ping(ctx context.Context) error {
	_, err := r.process(ctx, "ISO", "ISO", "a")
	return err
}

type remoteConverter struct {
	r              *Remote
	source, target string
}

func (c *remoteConverter) Convert(ctx context.Context, text string) (string, error) {
	return c.r.process(ctx, c.source, c.target, text)
}

// ConvertAll sends newline joined chunks and falls back to one call per word when
// the service changes the line count
func (c *remoteConverter) ConvertAll(ctx context.Context, words []string) ([]string, error) {
	out := make([]string, 0, len(words))
	for _, chunk := range chunkWords(words, remoteChunkBytes) {
		res, err := c.r.process(ctx, c.source, c.target, strings.Join(chunk, "\n"))
		if err != nil {
			return nil, err
		}
		lines := strings.Split(res, "\n")
		if len(lines) == len(chunk) {
			out = append(out, lines...)
			continue
		}
		c.r.log.Warn().Int("sent", len(chunk)).Int("got", len(lines)).Msg("remote batch line count mismatch, converting one by one")
		for _, w := range chunk {
			s, err := c.Convert(ctx, w)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}
	return out, nil
}

func chunkWords(words []string, limit int) [][]string {
	var (
		out  [][]string
		cur  []string
		size int
	)
	for _, w := range words {
		if len(cur) > 0 && size+len(w)+1 > limit {
			out = append(out, cur)
			cur, size = nil, 0
		}
		cur = append(cur, w)
		size += len(w) + 1
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// process issues one conversion with retries on transport errors and transient statuses
func (r *Remote) process(ctx context.Context, source, target, text string) (string, error) {
	q := url.Values{}
	q.Set("source", source)
	q.Set("target", target)
	q.Set("text", text)
	u := r.opts.BaseURL + "/api/public?" + q.Encode()

	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return "", perr.Wrap(err, perr.ErrorCodeTimeout, "transliteration cancelled")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "transliteration request")
		}
		req.Header.Set("User-Agent", remoteUA)
		req.Header.Set("Accept", "text/plain")

		resp, err := r.http.Do(req)
		if err != nil {
			if !r.shouldRetry(attempts) {
				return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "transliteration service unreachable")
			}
			back := r.backoff(attempts)
			r.log.Warn().Err(err).Dur("retry_in", back).Int("attempt", attempts).Msg("transliteration transport error retrying")
			if err := r.wait(ctx, back); err != nil {
				return "", perr.Wrap(err, perr.ErrorCodeTimeout, "transliteration cancelled")
			}
			attempts++
			continue
		}

		r.log.Debug().
			Str("source", source).
			Str("target", target).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Msg("transliteration response")

		switch resp.StatusCode {
		case http.StatusOK:
			body, err := io.ReadAll(io.LimitReader(resp.Body, remoteMaxBody))
			_ = resp.Body.Close()
			return string(body), perr.WrapIf(err, perr.ErrorCodeUnavailable, "transliteration read body")
		case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := min(retryAfter(resp.Header), remoteMaxWait)
			_ = drainAndClose(resp.Body)
			if !r.shouldRetry(attempts) {
				if resp.StatusCode == http.StatusTooManyRequests {
					return "", perr.Newf(perr.ErrorCodeTooManyRequests, "transliteration service rate limited")
				}
				return "", perr.Newf(perr.ErrorCodeUnavailable, "transliteration service returned %d", resp.StatusCode)
			}
			if wait <= 0 {
				wait = r.backoff(attempts)
			}
			r.log.Warn().Int("status", resp.StatusCode).Dur("retry_in", wait).Int("attempt", attempts).Msg("transliteration transient error retrying")
			if err := r.wait(ctx, wait); err != nil {
				return "", perr.Wrap(err, perr.ErrorCodeTimeout, "transliteration cancelled")
			}
			attempts++
			continue
		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			_ = resp.Body.Close()
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return "", perr.InvalidArgf("transliteration %s->%s rejected: %d %s", source, target, resp.StatusCode, strings.TrimSpace(string(body)))
			}
			return "", perr.Newf(perr.ErrorCodeUnavailable, "transliteration service returned %d", resp.StatusCode)
		}
	}
}

func (r *Remote) backoff(attempt int) time.Duration {
	d := r.opts.RetryBase << uint(attempt)
	if d <= 0 || d > remoteMaxWait {
		return remoteMaxWait
	}
	return d
}

// sleepCtx waits d or until ctx is done
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *Remote) shouldRetry(attempt int) bool { return attempt < r.opts.MaxRetries }

func retryAfter(h http.Header) time.Duration {
	n, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
