package encode

import (
	"strings"

	"github.com/signadot/redlex/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Class ir.Class
	Attr  ColorAttr
}

type ColorAttr int

const (
	TypeColor ColorAttr = iota
	TextColor
	SpanColor
	MarkColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, c := range ir.Classes() {
		able := Colorable{
			Class: c,
			Attr:  TypeColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SpanColor
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
		able.Attr = MarkColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: TextColor}

	able.Class = ir.LiteralClass
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Class = ir.WordClass
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Class = ir.PathClass
	able.Attr = TypeColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	able.Class = ir.ContainerClass
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	able.Class = ir.CompoundClass
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able.Class = ir.OperatorClass
	able.Attr = TextColor
	colors.Map[able] = color.CyanString

	able.Class = ir.ErrorClass
	colors.Map[able] = color.RedString
	able.Attr = TypeColor
	colors.Map[able] = color.RedString

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(cl ir.Class, a ColorAttr, s string) string {
	return c.Get(cl, a)(s)
}

func (c *Colors) Get(cl ir.Class, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Class: cl, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
