// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// gaussianPulse implements fun.Func as a single Gaussian pulse in time,
// amplitude·exp(-(t-center)²/(2·width²)). G and H are the first and
// second time derivatives, matching the convention of the teacher's own
// fun.Func implementations (velocity/acceleration of a prescribed
// displacement).
type gaussianPulse struct {
	amplitude, center, width float64
}

// Gaussian returns a fun.Func evaluating a single Gaussian pulse centered
// at t=center with standard deviation width (spec "Supplemented
// features": scenario config can name a shape instead of hand-writing a
// closure).
func Gaussian(amplitude, center, width float64) *gaussianPulse {
	return &gaussianPulse{amplitude: amplitude, center: center, width: width}
}

func (g *gaussianPulse) F(t float64, x []float64) float64 {
	d := t - g.center
	return g.amplitude * math.Exp(-(d*d)/(2*g.width*g.width))
}

func (g *gaussianPulse) G(t float64, x []float64) float64 {
	d := t - g.center
	return -d / (g.width * g.width) * g.F(t, x)
}

func (g *gaussianPulse) H(t float64, x []float64) float64 {
	d := t - g.center
	w2 := g.width * g.width
	return (d*d/w2 - 1) / w2 * g.F(t, x)
}

// Init implements fun.Func. The pulse's parameters are fixed at
// construction by Gaussian, so there is nothing for the prms table to set.
func (g *gaussianPulse) Init(prms fun.Prms) error { return nil }

// Grad implements fun.Func. The pulse has no spatial dependence.
func (g *gaussianPulse) Grad(v []float64, t float64, x []float64) {
	for i := range v {
		v[i] = 0
	}
}

// continuousWave implements fun.Func as an infinite sinusoid,
// amplitude·sin(2π·frequency·t + phase).
type continuousWave struct {
	amplitude, frequency, phase float64
}

// CW returns a fun.Func evaluating a continuous sinusoidal wave at the
// given frequency (Hz) and phase (radians).
func CW(amplitude, frequency, phase float64) *continuousWave {
	return &continuousWave{amplitude: amplitude, frequency: frequency, phase: phase}
}

func (c *continuousWave) F(t float64, x []float64) float64 {
	return c.amplitude * math.Sin(2*math.Pi*c.frequency*t+c.phase)
}

func (c *continuousWave) G(t float64, x []float64) float64 {
	w := 2 * math.Pi * c.frequency
	return c.amplitude * w * math.Cos(w*t+c.phase)
}

func (c *continuousWave) H(t float64, x []float64) float64 {
	w := 2 * math.Pi * c.frequency
	return -w * w * c.F(t, x)
}

// Init implements fun.Func. The wave's parameters are fixed at
// construction by CW, so there is nothing for the prms table to set.
func (c *continuousWave) Init(prms fun.Prms) error { return nil }

// Grad implements fun.Func. The wave has no spatial dependence.
func (c *continuousWave) Grad(v []float64, t float64, x []float64) {
	for i := range v {
		v[i] = 0
	}
}
