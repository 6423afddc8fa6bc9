package stylekit_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	stylekit "github.com/voguesphere/stylekit"
	"github.com/voguesphere/stylekit/catalog"
	"github.com/voguesphere/stylekit/core"
	"github.com/voguesphere/stylekit/filter"
	"github.com/voguesphere/stylekit/quiz"
	"github.com/voguesphere/stylekit/rank"
	"github.com/voguesphere/stylekit/rerank"
	"github.com/voguesphere/stylekit/store"
)

const brandFile = `{
	"products": [
		{"title": "Sky Blue Lawn Kurta", "price": "Rs. 4,500", "url": "u1", "labels": ["kurta", "lawn"]},
		{"title": "Black Shalwar Kameez", "price": "Rs. 12,800", "url": "u2", "labels": ["shalwar kameez"]},
		{"title": "White T-Shirt", "price": "Rs. 1,990", "url": "u3", "labels": ["t-shirt"]}
	]
}`

// 两次测验会话：聚合只认时间戳最大的一批。
const responsesFile = `[
	{"question_id": "7b6a2f64-0000-4000-8000-000000000001", "value": "[\"saree\"]", "timestamp": "2026-08-01T10:00:00Z"},
	{"question_id": "7b6a2f64-0000-4000-8000-000000000001", "value": "[\"kurta\"]", "timestamp": "2026-08-20T09:30:00Z"},
	{"question_id": "dd97363b-95e7-47c1-a813-1214b31b296a", "value": "[\"blue\"]", "timestamp": "2026-08-20T09:30:00Z"}
]`

func TestQuizToRecommendationFlow(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	defer kv.Close()

	if err := kv.Set(ctx, catalog.KeyPrefix+"khaadi", []byte(brandFile)); err != nil {
		t.Fatal(err)
	}
	if err := kv.HSet(ctx, quiz.DefaultResponsesKey, "user-42", []byte(responsesFile)); err != nil {
		t.Fatal(err)
	}

	records, err := (&quiz.StoreSource{Store: kv}).Responses(ctx, "user-42")
	if err != nil {
		t.Fatalf("Responses() error = %v", err)
	}
	signal := quiz.Aggregate(records)

	// 旧会话的 saree 不得进入信号
	if len(signal.Outfit) != 1 || signal.Outfit[0] != "kurta" {
		t.Fatalf("signal.Outfit = %v, want [kurta]", signal.Outfit)
	}
	if len(signal.Color) != 1 || signal.Color[0] != "blue" {
		t.Fatalf("signal.Color = %v, want [blue]", signal.Color)
	}

	cache := catalog.NewCache(&catalog.Loader{
		Sources:       catalog.StoreSources(kv, map[string]string{catalog.KeyPrefix + "khaadi": "Khaadi"}),
		Timeout:       time.Second,
		MaxConcurrent: 2,
		Logger:        zerolog.Nop(),
	})

	p := &stylekit.Pipeline{
		Nodes: []stylekit.Node{
			&catalog.Node{Cache: cache},
			filter.NewFacetsNode(),
			&rank.SignalNode{Ranker: &rank.Ranker{Limit: 10}},
			&rerank.TopNNode{N: 5},
		},
	}

	rctx := &core.RecommendContext{
		UserID: "user-42",
		Scene:  "discover",
		Signal: &signal,
	}
	out, err := p.Run(ctx, rctx, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// kurta 精确命中 3 分；color 信号 "blue" 在标签集里无命中（打分只看标签，派生色供 facet 过滤用）
	if len(out) == 0 || out[0].Title != "Sky Blue Lawn Kurta" {
		t.Fatalf("Run() first = %+v, want Sky Blue Lawn Kurta", out)
	}
	if out[0].Score != 3 {
		t.Errorf("top score = %v, want 3 (exact outfit match)", out[0].Score)
	}
	if out[0].Brand != "Khaadi" {
		t.Errorf("brand = %q, want Khaadi", out[0].Brand)
	}
	if len(out[0].Colors) == 0 {
		t.Error("derived colors missing from recommended product")
	}
}

func TestPriceFacetOnTopOfRanking(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	defer kv.Close()
	if err := kv.Set(ctx, catalog.KeyPrefix+"khaadi", []byte(brandFile)); err != nil {
		t.Fatal(err)
	}

	cache := catalog.NewCache(&catalog.Loader{
		Sources: catalog.StoreSources(kv, map[string]string{catalog.KeyPrefix + "khaadi": "Khaadi"}),
		Logger:  zerolog.Nop(),
	})

	p := &stylekit.Pipeline{
		Nodes: []stylekit.Node{
			&catalog.Node{Cache: cache},
			filter.NewFacetsNode(),
			&rank.SignalNode{},
		},
	}
	rctx := &core.RecommendContext{
		Signal:    &core.Signal{Outfit: []string{"kurta", "shalwar kameez", "t-shirt"}},
		Selection: &core.Selection{PriceRange: core.PriceHigh},
	}

	out, err := p.Run(ctx, rctx, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(out) != 1 || out[0].Title != "Black Shalwar Kameez" {
		t.Errorf("high price bracket should leave only Black Shalwar Kameez, got %d results", len(out))
	}
}
