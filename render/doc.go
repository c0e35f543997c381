// Package render rasterizes report classification matrices into images.
//
// What:
//
//   - Frame wraps a report.Matrix as an image.Image: every map cell becomes
//     a colored square with thin gray grid lines between cells.
//   - Two styles mirror the two report views: StyleSnapshot paints the
//     explored area cyan, StyleFinal paints the optimal route light green
//     and discarded cells red.
//   - Decorate attaches a legend strip of class color swatches, composed
//     with github.com/yalue/image_utils.
//   - SavePNG writes any image to disk.
//
// Why:
//
//   - Progressive visualization: one frame per search snapshot, then a final
//     annotated map, without the search or report layers ever touching
//     image code.
//
// The palette is fixed: white free, black blocked, blue departure, dark
// green destination, cyan explored, light green route, red discarded.
package render
