// Package dsl 提供基于 CEL (Common Expression Language) 的商品规则解释器。
package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/voguesphere/stylekit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("product", cel.DynType),
		cel.Variable("rctx", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是商品规则解释器：一次编译，多次求值。
//
// 表达式语法（CEL 标准语法）：
//   - 标签成员："kurta" in product.labels
//   - 颜色："red" in product.colors
//   - 分数：product.score > 2.0
//   - 文本：product.title.contains("Embroidered")
//   - 组合："saree" in product.labels && product.brand == "Khaadi"
//   - 上下文：rctx.scene == "discover"
type Eval struct {
	prg cel.Program
}

// NewEval 编译表达式并缓存为可执行程序。
func NewEval(expr string) (*Eval, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}

	return &Eval{prg: prg}, nil
}

// Matches 对单个商品求值，返回布尔结果。
// 表达式返回非布尔值时视为错误。
func (e *Eval) Matches(p *core.Product, rctx *core.RecommendContext) (bool, error) {
	out, _, err := e.prg.Eval(buildInput(p, rctx))
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func buildInput(p *core.Product, rctx *core.RecommendContext) map[string]interface{} {
	product := map[string]interface{}{}
	if p != nil {
		product = map[string]interface{}{
			"title":  p.Title,
			"price":  p.Price,
			"brand":  p.Brand,
			"url":    p.URL,
			"labels": p.NormLabels(),
			"colors": p.Colors,
			"score":  p.Score,
		}
	}

	rc := map[string]interface{}{}
	if rctx != nil {
		rc = map[string]interface{}{
			"user_id": rctx.UserID,
			"scene":   rctx.Scene,
			"params":  rctx.Params,
		}
	}

	return map[string]interface{}{
		"product": product,
		"rctx":    rc,
	}
}
