/*
 * lftplot.go, part of golft
 *
 * Copyright 2025 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package lftplot

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/rmera/golft/diagram"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Options modifies the produced plots. Use DefaultOptions to get a set with
//sane defaults, then change what you need with the provided methods.
type Options struct {
	width  float64
	height float64
	legend bool
}

//DefaultOptions returns an Options for a 16x12 cm plot with no legend.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.width = 16
	ret.height = 12
	ret.legend = false
	return ret
}

//Returns the plot width in cm, and sets it if a positive value is given.
func (r *Options) Width(width ...float64) float64 {
	ret := r.width
	if len(width) > 0 && width[0] > 0 {
		r.width = width[0]
	}
	return ret
}

//Returns the plot height in cm, and sets it if a positive value is given.
func (r *Options) Height(height ...float64) float64 {
	ret := r.height
	if len(height) > 0 && height[0] > 0 {
		r.height = height[0]
	}
	return ret
}

//Returns whether a legend with the level names will be drawn, and sets it if
//a value is given. With all the levels of the larger configurations the legend
//gets crowded, so it is off by default.
func (r *Options) Legend(legend ...bool) bool {
	ret := r.legend
	if len(legend) > 0 {
		r.legend = legend[0]
	}
	return ret
}

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

/*Diagram produces a plot, by default in png format, of the given data set:
  one colored line per level, against the axes the data set itself reports.
  Levels named in tag (maximum 4) are highlighted with glyphs. If plotname has
  no extension, ".png" is appended; with an extension, the format is taken
  from it, so "diagram.svg" gives an SVG. Returns an error or nil*/
func Diagram(D *diagram.Dataset, tag []string, plotname string, options ...*Options) error {
	if D == nil {
		panic("Given nil data")
	}
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	title := "Tanabe-Sugano-Diagram"
	if D.Mode() == diagram.EnergyLevels {
		title = "DD excitations -Diagram"
	}
	p := basicPlot(title, D.XLabel(), D.YLabel())
	series := D.Series()
	var tagged int //How many levels have been tagged?
	for _, val := range series {
		if val.Len() == 0 {
			continue
		}
		temp := make(plotter.XYs, val.Len())
		for i := range temp {
			temp[i].X, temp[i].Y = val.Point(i)
		}
		l, err := plotter.NewLine(temp)
		if err != nil {
			return err
		}
		//one hue per spin multiplicity, which is the usual convention
		//in these diagrams
		r, g, b := colors(val.Term().Mult()-1, 6)
		l.LineStyle.Color = color.RGBA{R: r, B: b, G: g, A: 255}
		l.LineStyle.Width = vg.Points(1)
		p.Add(l)
		if o.legend {
			p.Legend.Add(val.Name(), l)
		}
		if isInString(tag, val.Name()) {
			s, err := plotter.NewScatter(temp)
			if err != nil {
				return err
			}
			s.GlyphStyle.Shape, _ = getShape(tagged) //past 4 tags everything gets the ring glyph
			s.GlyphStyle.Color = color.RGBA{R: r, B: b, G: g, A: 255}
			tagged++
			p.Add(s)
		}
	}
	if o.legend {
		p.Legend.Top = true
	}
	filename := plotname
	if filepath.Ext(filename) == "" {
		filename = fmt.Sprintf("%s.png", plotname)
	}
	if err := p.Save(vg.Length(o.width)*vg.Centimeter, vg.Length(o.height)*vg.Centimeter, filename); err != nil {
		return err
	}
	return nil
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r = v
		g = t
		b = p
	case 1:
		r = q
		g = v
		b = p
	case 2:
		r = p
		g = v
		b = t
	case 3:
		r = p
		g = q
		b = v
	case 4:
		r = t
		g = p
		b = v
	default: //case 5
		r = v
		g = p
		b = q
	}

	r = r * conversion
	g = g * conversion
	b = b * conversion
	return uint8(r), uint8(g), uint8(b)
}

func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64((float64(key) * norm) + 20.0)
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	s := 1.0
	v := 1.0
	r, g, b = iHVS2RGB(h, v, s)
	return r, g, b
}

func getShape(tagged int) (draw.GlyphDrawer, error) {
	switch tagged {
	case 0:
		return draw.PyramidGlyph{}, nil
	case 1:
		return draw.CircleGlyph{}, nil
	case 2:
		return draw.SquareGlyph{}, nil
	case 3:
		return draw.CrossGlyph{}, nil
	default:
		return draw.RingGlyph{}, fmt.Errorf("Maximun number of taggable levels is 4") // you can still ignore the error and will get just the regular glyph (your level will not be tagged)
	}
}
