package planar_test

import (
	"fmt"

	"honnef.co/go/planar"
)

func ExamplePolyline_Project() {
	p, err := planar.NewPolyline([]planar.Point{
		planar.Pt(0, 0),
		planar.Pt(1, 0),
		planar.Pt(1, 1),
	})
	if err != nil {
		panic(err)
	}
	f := p.Project(planar.Pt(0.5, 0.5), 0.5, nil)
	fmt.Printf("s=%.3f offset=%.3f converged=%t\n", f.S, f.Offset, f.Converged)
	// Output:
	// s=0.500 offset=0.500 converged=true
}

func ExamplePolyline_Add() {
	p, err := planar.NewPolyline([]planar.Point{planar.Pt(0, 0), planar.Pt(3, 4)})
	if err != nil {
		panic(err)
	}
	if err := p.Add(planar.Pt(3, 5), planar.Pt(3, 7)); err != nil {
		panic(err)
	}
	fmt.Println(p.Breakpoints())
	fmt.Println(p.Pos(5.5))
	// Output:
	// [0 5 6 8]
	// (3, 4.5)
}

func ExamplePeriodicSpline_Wrap() {
	square := []planar.Point{
		planar.Pt(0, 0),
		planar.Pt(1, 0),
		planar.Pt(1, 1),
		planar.Pt(0, 1),
	}
	loop, err := planar.NewPeriodicSpline(square)
	if err != nil {
		panic(err)
	}
	fmt.Println(loop.Period())
	fmt.Println(loop.Wrap(9.5))
	fmt.Println(loop.Wrap(-0.5))
	// Output:
	// 4
	// 1.5
	// 3.5
}

func ExampleAsSmooth() {
	curves := []planar.Curve{}
	p, _ := planar.NewPolyline([]planar.Point{planar.Pt(0, 0), planar.Pt(1, 0)})
	s, _ := planar.NewCubicSpline([]planar.Point{planar.Pt(0, 0), planar.Pt(1, 0)})
	curves = append(curves, p, s)
	for _, c := range curves {
		if sc, ok := planar.AsSmooth(c); ok {
			fmt.Printf("%s: curvature %g\n", c.Kind(), sc.Curvature(0.5))
		} else {
			fmt.Printf("%s: no curvature\n", c.Kind())
		}
	}
	// Output:
	// polyline: no curvature
	// spline: curvature 0
}

func ExamplePositions() {
	p, err := planar.NewPolyline([]planar.Point{
		planar.Pt(0, 0),
		planar.Pt(2, 0),
		planar.Pt(2, 2),
	})
	if err != nil {
		panic(err)
	}
	ss := planar.Linspace(p.SMin(), p.SMax(), 5)
	fmt.Println(ss)
	fmt.Println(planar.Positions(p, ss))
	fmt.Println(planar.UnitTangents(p, ss))
	// Output:
	// [0 1 2 3 4]
	// [(0, 0) (1, 0) (2, 0) (2, 1) (2, 2)]
	// [⟨1, 0⟩ ⟨1, 0⟩ ⟨0, 1⟩ ⟨0, 1⟩ ⟨0, 1⟩]
}
