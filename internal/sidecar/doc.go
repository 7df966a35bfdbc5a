// Package sidecar locates and reads darktable XMP sidecar files.
//
// Sidecars sit next to the image they describe: the image filename plus the
// sidecar extension, with duplicate versions inserting a two-digit _NN suffix
// before the image extension (IMG_0001.CR2 -> IMG_0001.CR2.xmp, version 2 ->
// IMG_0001_02.CR2.xmp). A missing sidecar is an ordinary, reportable state;
// only unreadable or unparsable files are errors. Files are opened strictly
// for reading.
package sidecar
