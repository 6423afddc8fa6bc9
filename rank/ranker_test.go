package rank

import (
	"math/rand"
	"testing"

	"github.com/voguesphere/stylekit/core"
)

func product(title string, labels ...string) *core.Product {
	return &core.Product{Title: title, Labels: labels}
}

func TestRanker_Score_ExactDominatesSubstring(t *testing.T) {
	r := &Ranker{}
	p := product("Kurta", "kurta")
	sig := core.Signal{Outfit: []string{"kurta"}}

	// 精确命中记 3，不叠加子串的 1.5
	if got := r.Score(p, sig); got != 3 {
		t.Errorf("Score = %v, want 3", got)
	}
}

func TestRanker_Score_SubstringMatch(t *testing.T) {
	r := &Ranker{}
	p := product("Embroidered Kurta", "embroidered kurta")
	sig := core.Signal{Outfit: []string{"kurta"}}

	if got := r.Score(p, sig); got != 1.5 {
		t.Errorf("Score = %v, want 1.5", got)
	}
}

// 门控不变式：outfit 标签非空时，身材层对任何商品都贡献 0 分。
func TestRanker_Score_BodyTypeGatedByOutfit(t *testing.T) {
	r := &Ranker{}
	p := product("Wrap Dress", "hourglass")
	sig := core.Signal{
		Outfit:   []string{"kurta"},
		BodyType: []string{"hourglass"},
	}

	if got := r.Score(p, sig); got != 0 {
		t.Errorf("Score = %v, want 0 (body-type tier must be gated off)", got)
	}

	// outfit 为空时兜底层生效
	sig.Outfit = nil
	if got := r.Score(p, sig); got != 2 {
		t.Errorf("Score = %v, want 2 (body-type exact)", got)
	}
}

// 颜色层独立叠加，不受其他层门控影响。
func TestRanker_Score_ColorAlwaysAdditive(t *testing.T) {
	r := &Ranker{}
	p := product("Red Kurta", "kurta", "red")
	sig := core.Signal{
		Outfit: []string{"kurta"},
		Color:  []string{"red"},
	}

	if got := r.Score(p, sig); got != 4 {
		t.Errorf("Score = %v, want 4 (3 outfit + 1 color)", got)
	}
}

// multiset 语义：信号中的重复标签各自独立计分。
func TestRanker_Score_DuplicateSignalLabels(t *testing.T) {
	r := &Ranker{}
	p := product("Kurta", "kurta")
	sig := core.Signal{Outfit: []string{"kurta", "kurta"}}

	if got := r.Score(p, sig); got != 6 {
		t.Errorf("Score = %v, want 6", got)
	}
}

func TestRanker_Rank_EmptyCatalog(t *testing.T) {
	r := &Ranker{}
	if got := r.Rank(nil, core.Signal{Outfit: []string{"kurta"}}); len(got) != 0 {
		t.Errorf("Rank(empty catalog) = %v, want empty", got)
	}
}

// 兜底保证：非空目录 + 全空信号，必返回 min(limit, catalogSize) 个商品。
func TestRanker_Rank_FallbackOnZeroMatches(t *testing.T) {
	catalog := []*core.Product{
		product("A", "kurta"),
		product("B", "saree"),
		product("C", "jeans"),
	}

	tests := []struct {
		limit int
		want  int
	}{
		{limit: 2, want: 2},
		{limit: 30, want: 3},
	}
	for _, tt := range tests {
		r := &Ranker{Limit: tt.limit, Rand: rand.New(rand.NewSource(1))}
		got := r.Rank(catalog, core.Signal{})
		if len(got) != tt.want {
			t.Errorf("limit=%d: fallback returned %d products, want %d", tt.limit, len(got), tt.want)
		}
	}
}

// 兜底不触发：只要有一个正分命中，结果只含正分商品。
func TestRanker_Rank_NoFallbackWhenMatched(t *testing.T) {
	catalog := []*core.Product{
		product("P1", "kurta", "red"),
		product("P2", "t-shirt", "blue"),
		product("P3", "saree", "gold"),
	}
	sig := core.Signal{
		Outfit: []string{"kurta"},
		Color:  []string{"red"},
	}

	r := &Ranker{}
	got := r.Rank(catalog, sig)
	if len(got) != 1 {
		t.Fatalf("Rank returned %d products, want 1: %+v", len(got), got)
	}
	if got[0].Title != "P1" {
		t.Errorf("top product = %q, want P1", got[0].Title)
	}
	if got[0].Score != 4 {
		t.Errorf("P1 score = %v, want 4 (3 exact outfit + 1 exact color)", got[0].Score)
	}
}

// 稳定排序：同分商品保持目录原序。
func TestRanker_Rank_StableTies(t *testing.T) {
	catalog := []*core.Product{
		product("First", "kurta"),
		product("Second", "kurta"),
		product("Third", "kurta"),
	}
	r := &Ranker{}
	got := r.Rank(catalog, core.Signal{Outfit: []string{"kurta"}})

	want := []string{"First", "Second", "Third"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d = %q, want %q", i, got[i].Title, title)
		}
	}
}

// Rank 不得写共享目录：打分落在浅拷贝上。
func TestRanker_Rank_DoesNotMutateCatalog(t *testing.T) {
	catalog := []*core.Product{product("P1", "kurta")}
	r := &Ranker{}
	out := r.Rank(catalog, core.Signal{Outfit: []string{"kurta"}})

	if catalog[0].Score != 0 {
		t.Errorf("catalog product score mutated: %v", catalog[0].Score)
	}
	if out[0] == catalog[0] {
		t.Error("ranked product shares pointer with catalog snapshot")
	}
}

func TestRanker_Rank_Truncates(t *testing.T) {
	catalog := make([]*core.Product, 0, 40)
	for i := 0; i < 40; i++ {
		catalog = append(catalog, product("P", "kurta"))
	}
	r := &Ranker{}
	if got := r.Rank(catalog, core.Signal{Outfit: []string{"kurta"}}); len(got) != DefaultLimit {
		t.Errorf("Rank returned %d products, want %d", len(got), DefaultLimit)
	}
}
