package consensus

import (
	"errors"

	"quorum/pkg/models"
)

// ErrNoConsensusData is returned when no response carries a usable
// confidence value, which would otherwise make the score a division by
// zero. The caller still gets the responses and recommendation.
var ErrNoConsensusData = errors.New("no responses carried a confidence value")

// NoResponses is the recommendation sentinel used when there are no
// responses at all.
const NoResponses = "No responses available"

// Result is the outcome of consensus evaluation across providers.
type Result struct {
	// Responses holds the per-provider entries in dispatch order,
	// including error-marked ones.
	Responses []models.Response `json:"responses"`
	// Score is the arithmetic mean of the confidences present.
	Score float64 `json:"consensus_score"`
	// Recommendation is the content of the first successful response.
	Recommendation string `json:"recommendation"`
}

// Evaluate computes the consensus score and recommendation over a batch
// of responses.
//
// The score is the mean of the confidence values actually present;
// error-marked entries carry none and are excluded. When no usable
// confidence exists the partial Result is still returned, alongside
// ErrNoConsensusData, so callers can render per-provider errors.
func Evaluate(responses []models.Response) (*Result, error) {
	result := &Result{
		Responses:      responses,
		Recommendation: NoResponses,
	}

	var (
		sum   float64
		count int
	)
	for _, resp := range responses {
		if resp.Failed() {
			continue
		}
		if result.Recommendation == NoResponses {
			result.Recommendation = resp.Content
		}
		sum += resp.Confidence
		count++
	}

	if count == 0 {
		return result, ErrNoConsensusData
	}

	result.Score = sum / float64(count)
	return result, nil
}
