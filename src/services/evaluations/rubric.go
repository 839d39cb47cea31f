package evaluations

import (
	"fmt"
	"time"

	"Backend-CampusHub/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// validateUpdates checks every supplied criterion edit against the rubric
// shape and the per-criterion score range.
func validateUpdates(criteria []models.Criterion, updates []models.CriterionUpdate) error {
	for _, u := range updates {
		if u.Index < 0 || u.Index >= len(criteria) {
			return newValidationError(fmt.Sprintf("criterion index %d is out of range", u.Index))
		}
		criterion := criteria[u.Index]
		if u.Score != nil {
			if *u.Score < 0 || *u.Score > criterion.MaxScore {
				return &ValidationError{
					Criterion: criterion.Name,
					Reason:    fmt.Sprintf("score %g is outside [0, %g]", *u.Score, criterion.MaxScore),
				}
			}
		}
	}
	return nil
}

// criterionPatches collapses the supplied edits into one merge document per
// rubric index, carrying only the fields the caller actually sent. Comments
// are wrapped in $literal so user text is never parsed as an expression.
func criterionPatches(updates []models.CriterionUpdate) map[int]bson.M {
	patches := make(map[int]bson.M, len(updates))
	for _, u := range updates {
		patch, ok := patches[u.Index]
		if !ok {
			patch = bson.M{}
			patches[u.Index] = patch
		}
		if u.Score != nil {
			patch["score"] = *u.Score
		}
		if u.Comment != nil {
			patch["comment"] = bson.M{"$literal": *u.Comment}
		}
	}
	return patches
}

// scoresPipeline builds the pipeline update behind RecordScores. Pipeline
// updates cannot address array elements by dotted path, so the criteria
// array is rebuilt with $map, merging each patch onto the stored element
// and leaving the rest untouched. The second stage re-derives totalScore
// from the merged array inside the same update, treating an unset score as
// 0 - the total is never taken from a caller's read snapshot, so it stays
// equal to the sum of the persisted scores under concurrent writers.
func scoresPipeline(updates []models.CriterionUpdate, finalComment *string, now time.Time) mongo.Pipeline {
	patches := criterionPatches(updates)

	branches := bson.A{}
	for idx := 0; idx < models.RubricSize; idx++ {
		patch, ok := patches[idx]
		if !ok {
			continue
		}
		branches = append(branches, bson.M{
			"case": bson.M{"$eq": bson.A{"$$idx", idx}},
			"then": bson.M{"$mergeObjects": bson.A{"$$item", patch}},
		})
	}

	set := bson.M{
		"updatedAt": now,
		"criteria": bson.M{"$map": bson.M{
			"input": bson.M{"$range": bson.A{0, bson.M{"$size": "$criteria"}}},
			"as":    "idx",
			"in": bson.M{"$let": bson.M{
				"vars": bson.M{"item": bson.M{"$arrayElemAt": bson.A{"$criteria", "$$idx"}}},
				"in": bson.M{"$switch": bson.M{
					"branches": branches,
					"default":  "$$item",
				}},
			}},
		}},
	}
	if finalComment != nil {
		set["finalComment"] = bson.M{"$literal": *finalComment}
	}

	total := bson.M{"$sum": bson.M{"$map": bson.M{
		"input": "$criteria",
		"as":    "c",
		"in":    bson.M{"$ifNull": bson.A{"$$c.score", 0}},
	}}}

	return mongo.Pipeline{
		bson.D{{Key: "$set", Value: set}},
		bson.D{{Key: "$set", Value: bson.M{"totalScore": total}}},
	}
}

// missingCriterion returns the name of the first unscored criterion, or ""
// when the rubric is complete. Submission requires a complete rubric: a
// submitted evaluation with an accidental zero would be indistinguishable
// from a genuinely low-scored one.
func missingCriterion(criteria []models.Criterion) string {
	for _, criterion := range criteria {
		if criterion.Score == nil {
			return criterion.Name
		}
	}
	return ""
}
