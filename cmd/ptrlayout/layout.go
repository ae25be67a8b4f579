package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/omeyang/ptrkit/pkg/ptr/xbit"
)

// 输出格式。
const (
	formatText = "text"
	formatJSON = "json"
)

// usageError 表示参数错误，映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// layoutReport 一种「字宽 + 对齐 + 状态位数」组合的位划分结果。
// 掩码以定宽十六进制字符串输出，避免 JSON 数值精度问题。
type layoutReport struct {
	Name      string `json:"name,omitempty"`
	Word      uint64 `json:"word"`
	Align     uint64 `json:"align"`
	StateBits uint64 `json:"state_bits"`
	PtrBits   uint64 `json:"ptr_bits"`
	StateMax  uint64 `json:"state_max"`
	StateMask string `json:"state_mask"`
	PtrMask   string `json:"ptr_mask"`
}

// mask64 返回低 n 位全为 1 的 64 位掩码。与 xbit.Mask 不同，
// 这里的位宽由命令行参数而非主机平台决定。
func mask64(n uint64) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<n - 1
}

// computeLayout 计算一种组合的位划分。
// bits 为负表示未显式指定，按对齐值推导全部可用位数。
func computeLayout(name string, word, align uint64, bits int64) (layoutReport, error) {
	if word != 32 && word != 64 {
		return layoutReport{}, usageErrorf("不支持的字宽 %d（可选 32 或 64）", word)
	}
	if align == 0 || align&(align-1) != 0 {
		return layoutReport{}, usageErrorf("对齐值 %d 不是 2 的幂", align)
	}

	maxBits := xbit.Log2(align)
	if maxBits >= word {
		return layoutReport{}, usageErrorf("对齐值 %d 超出 %d 位地址空间", align, word)
	}
	if bits < 0 {
		bits = int64(maxBits)
	} else if uint64(bits) > maxBits {
		return layoutReport{}, usageErrorf("请求 %d 位状态，但对齐值 %d 至多保证 %d 位", bits, align, maxBits)
	}

	stateBits := uint64(bits)
	wordMask := mask64(word)
	stateMask := mask64(stateBits)
	hexDigits := int(word / 4)

	return layoutReport{
		Name:      name,
		Word:      word,
		Align:     align,
		StateBits: stateBits,
		PtrBits:   word - stateBits,
		StateMax:  stateMask,
		StateMask: fmt.Sprintf("0x%0*x", hexDigits, stateMask),
		PtrMask:   fmt.Sprintf("0x%0*x", hexDigits, wordMask&^stateMask),
	}, nil
}

// renderText 渲染单个报告。
func renderText(r layoutReport) string {
	var b strings.Builder
	if r.Name != "" {
		fmt.Fprintf(&b, "name:       %s\n", r.Name)
	}
	fmt.Fprintf(&b, "word:       %d bits\n", r.Word)
	fmt.Fprintf(&b, "alignment:  %d bytes\n", r.Align)
	fmt.Fprintf(&b, "state bits: %d\n", r.StateBits)
	fmt.Fprintf(&b, "ptr bits:   %d\n", r.PtrBits)
	fmt.Fprintf(&b, "state max:  %d\n", r.StateMax)
	fmt.Fprintf(&b, "state mask: %s\n", r.StateMask)
	fmt.Fprintf(&b, "ptr mask:   %s\n", r.PtrMask)
	return b.String()
}

// renderTable 渲染报告总表。
func renderTable(reports []layoutReport) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 2, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tALIGN\tSTATE_BITS\tPTR_BITS\tSTATE_MAX\tSTATE_MASK")
	for _, r := range reports {
		name := r.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n",
			name, r.Align, r.StateBits, r.PtrBits, r.StateMax, r.StateMask)
	}
	w.Flush()
	return b.String()
}

// renderJSON 渲染 JSON 输出，单元素与多元素统一输出数组。
func renderJSON(reports []layoutReport) (string, error) {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}

// render 按全局 format 选项渲染。table 为真时 text 格式使用总表布局。
func render(format string, reports []layoutReport, table bool) (string, error) {
	switch format {
	case formatJSON:
		return renderJSON(reports)
	case formatText:
		if table {
			return renderTable(reports), nil
		}
		var b strings.Builder
		for i, r := range reports {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(renderText(r))
		}
		return b.String(), nil
	default:
		return "", usageErrorf("不支持的输出格式 %q（可选 text 或 json）", format)
	}
}
