// Package ocr locates words in images using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2) to find the
// bounding box of each word in a screenshot. The text contrast audit uses the
// boxes to decide which pixels are glyphs and which are background; the
// recognized text itself is only reported back for context.
//
// # Prerequisites
//
// Tesseract and its development headers must be installed on the system:
//   - Ubuntu/Debian: apt-get install libtesseract-dev tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// Language data files are required for each language:
//   - Ubuntu/Debian: tesseract-ocr-<lang> packages
//
// # Supported Languages
//
// The default language is English ("eng"). Other languages can be specified
// using their Tesseract language codes ("deu", "fra", "spa", "chi_sim", ...).
//
// # Scaling
//
// Images are upscaled with a Lanczos filter before recognition (DefaultScale)
// and the resulting boxes are divided back down, rounding outward, so the
// reported bounds always cover the glyphs in the original image.
package ocr
