package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// EvidenceSearchService calls the external web-search API used to
// suggest citations for a claim draft. It degrades gracefully: when no
// API key is configured the AI endpoints report that instead of
// failing requests elsewhere.
type EvidenceSearchService struct {
	baseURL string
	token   string
	client  *http.Client
}

var evidenceService *EvidenceSearchService

func GetEvidenceSearchService() *EvidenceSearchService {
	if evidenceService == nil {
		evidenceService = &EvidenceSearchService{
			baseURL: os.Getenv("SEARCH_API_URL"),
			token:   os.Getenv("SEARCH_API_KEY"),
			client:  &http.Client{Timeout: 15 * time.Second},
		}
	}
	return evidenceService
}

func (s *EvidenceSearchService) Configured() bool {
	return s.baseURL != "" && s.token != ""
}

// EvidenceItem mirrors the Evidence entity's citation fields; the
// search result title becomes the source and the URL the publisher.
type EvidenceItem struct {
	Source    string `json:"source"`
	Publisher string `json:"publisher"`
	Text      string `json:"text"`
	URL       string `json:"url"`
}

type searchRequest struct {
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
}

type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// SearchEvidence runs a web search and converts the hits into evidence
// candidates.
func (s *EvidenceSearchService) SearchEvidence(query, depth string) ([]EvidenceItem, error) {
	if depth == "" {
		depth = "advanced"
	}
	resp, err := s.search(query, depth)
	if err != nil {
		return nil, err
	}

	items := make([]EvidenceItem, 0, len(resp.Results))
	for _, r := range resp.Results {
		items = append(items, EvidenceItem{
			Source:    r.Title,
			Publisher: r.URL,
			Text:      r.Content,
			URL:       r.URL,
		})
	}
	return items, nil
}

// ImproveText appends a references block with the top search hits for
// the draft. The draft itself is returned untouched when the search
// comes back empty.
func (s *EvidenceSearchService) ImproveText(text string) (string, error) {
	preview := text
	if len(preview) > 200 {
		preview = preview[:200]
	}
	preview = strings.ReplaceAll(preview, "\n", " ")

	resp, err := s.search(preview+" supporting evidence", "advanced")
	if err != nil {
		return "", err
	}
	if len(resp.Results) == 0 {
		return text, nil
	}

	var refs []string
	for i, r := range resp.Results {
		if i >= 3 {
			break
		}
		content := r.Content
		if len(content) > 150 {
			content = content[:150]
		}
		if r.Title != "" && content != "" {
			refs = append(refs, fmt.Sprintf("[%s] %s", r.Title, content))
		}
	}
	if len(refs) == 0 {
		return text, nil
	}
	return text + "\n\n--- References ---\n" + strings.Join(refs, "\n\n"), nil
}

func (s *EvidenceSearchService) search(query, depth string) (*searchResponse, error) {
	body, err := json.Marshal(searchRequest{Query: query, SearchDepth: depth})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	httpResp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", httpResp.StatusCode)
	}

	var resp searchResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
