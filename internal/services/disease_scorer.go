package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// DefaultTopN is the number of ranked diseases returned when the caller does
// not ask for a specific limit.
const DefaultTopN = 3

var ErrInvalidTopN = errors.New("invalid result limit")

// DiseaseAssociationSource exposes the symptom-to-disease association table.
type DiseaseAssociationSource interface {
	DiseasesForSymptom(symptom string) []string
}

// DiseasePrediction pairs a disease name with its heuristic probability: the
// disease's raw match count as a percentage of the best raw match count in
// the same call, rounded to one decimal. It is a relative rank, not a
// calibrated likelihood.
type DiseasePrediction struct {
	Disease     string
	Probability float64
}

type DiseaseScorer struct {
	associations DiseaseAssociationSource
}

func NewDiseaseScorer(associations DiseaseAssociationSource) *DiseaseScorer {
	return &DiseaseScorer{associations: associations}
}

// Score counts one vote per (symptom, disease) association, normalizes the
// counts against the maximum and returns at most topN predictions sorted
// descending. Ties keep the order in which diseases were first encountered
// during accumulation. Symptoms without associations contribute nothing; an
// empty accumulation yields an empty, non-error result.
func (scorer *DiseaseScorer) Score(symptoms []string, topN int) ([]DiseasePrediction, error) {
	if topN < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTopN, topN)
	}

	counts := make(map[string]int)
	encountered := make([]string, 0)
	for _, symptom := range symptoms {
		for _, disease := range scorer.associations.DiseasesForSymptom(symptom) {
			if _, seen := counts[disease]; !seen {
				encountered = append(encountered, disease)
			}
			counts[disease]++
		}
	}

	if len(encountered) == 0 {
		return []DiseasePrediction{}, nil
	}

	maxScore := 0
	for _, count := range counts {
		if count > maxScore {
			maxScore = count
		}
	}

	predictions := make([]DiseasePrediction, 0, len(encountered))
	for _, disease := range encountered {
		predictions = append(predictions, DiseasePrediction{
			Disease:     disease,
			Probability: roundProbability(counts[disease], maxScore),
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Probability > predictions[j].Probability
	})

	if len(predictions) > topN {
		predictions = predictions[:topN]
	}
	return predictions, nil
}

// roundProbability computes round((score/maxScore)*100, 1).
func roundProbability(score int, maxScore int) float64 {
	return math.Round(float64(score)*1000/float64(maxScore)) / 10
}
