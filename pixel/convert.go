// seehuhn.de/go/raster - colour conversion core for raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pixel

// ToCanonicalRaw converts src to raw canonical colours.
func ToCanonicalRaw[S any, PS Encoding[S]](cfg *Config, src []S, dst []Color) error {
	if err := checkArgs("ToCanonicalRaw", cfg, len(src), len(dst)); err != nil {
		return err
	}
	for i := range src {
		dst[i] = PS(&src[i]).ToRaw()
	}
	return nil
}

// FromCanonicalRaw stores raw canonical colours into dst.
func FromCanonicalRaw[D any, PD Encoding[D]](cfg *Config, src []Color, dst []D) error {
	if err := checkArgs("FromCanonicalRaw", cfg, len(src), len(dst)); err != nil {
		return err
	}
	for i, c := range src {
		PD(&dst[i]).FromRaw(c)
	}
	return nil
}

// ToCanonicalScaled converts src to scaled canonical colours.
func ToCanonicalScaled[S any, PS Encoding[S]](cfg *Config, src []S, dst []Color) error {
	if err := checkArgs("ToCanonicalScaled", cfg, len(src), len(dst)); err != nil {
		return err
	}
	for i := range src {
		dst[i] = PS(&src[i]).ToScaled()
	}
	return nil
}

// FromCanonicalScaled stores scaled canonical colours into dst.
func FromCanonicalScaled[D any, PD Encoding[D]](cfg *Config, src []Color, dst []D) error {
	if err := checkArgs("FromCanonicalScaled", cfg, len(src), len(dst)); err != nil {
		return err
	}
	for i, c := range src {
		PD(&dst[i]).FromScaled(c)
	}
	return nil
}

// Convert converts pixels from one encoding to another.
//
// Every pixel is first converted to a scaled canonical colour.  If the
// destination encoding implements [LumaWeighted], the BT.709 luma of that
// colour is stored.  Otherwise the colour is stored using the generic
// FromScaled method of the destination.
func Convert[S, D any, PS Encoding[S], PD Encoding[D]](cfg *Config, src []S, dst []D) error {
	if err := checkArgs("Convert", cfg, len(src), len(dst)); err != nil {
		return err
	}

	if _, isLuma := any(PD(nil)).(LumaWeighted); isLuma {
		switch d := any(dst).(type) {
		case []Gray8:
			convertLuma[S, Gray8, PS, *Gray8](src, d)
		case []Gray16:
			convertLuma[S, Gray16, PS, *Gray16](src, d)
		default:
			// encodings from other packages
			for i := range src {
				c := PS(&src[i]).ToScaled()
				any(PD(&dst[i])).(LumaWeighted).FromLumaWeighted(c)
			}
		}
		return nil
	}

	for i := range src {
		PD(&dst[i]).FromScaled(PS(&src[i]).ToScaled())
	}
	return nil
}

type lumaEncoding[P any] interface {
	*P
	LumaWeighted
}

func convertLuma[S, D any, PS Encoding[S], PD lumaEncoding[D]](src []S, dst []D) {
	for i := range src {
		PD(&dst[i]).FromLumaWeighted(PS(&src[i]).ToScaled())
	}
}
