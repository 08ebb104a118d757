package main

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	errorsGo "github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/srlehn/rescale"
	"github.com/srlehn/rescale/parallel"
	"github.com/srlehn/rescale/scale"
)

func init() { rootCmd.AddCommand(resizeCmd) }

var resizeCmd = &cobra.Command{
	Use:   resizeCmdStr,
	Short: `resize an image file`,
	Long: `Resize an image file.

` + resizeUsageStr,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		run(resizeFunc(cmd, args))
	},
}

var (
	resizeCmdStr   = "resize"
	resizeUsageStr = `usage: ` + os.Args[0] + ` ` + resizeCmdStr + ` <input> <output> <size(<w>x<h>)> [--algo <family>] [--workers <n>]`
	errResizeUsage = errorsGo.New(resizeUsageStr)

	algoFlag    string
	workersFlag int
)

func init() {
	resizeCmd.Flags().StringVar(&algoFlag, `algo`, `bicubic`, `kernel family: nearest, box, bilinear, mitchell, bicubic, lanczos`)
	resizeCmd.Flags().IntVar(&workersFlag, `workers`, 1, `worker pool size, 1 = sequential`)
}

func resizeFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		sizeParts := strings.SplitN(args[2], `x`, 2)
		if len(sizeParts) != 2 {
			return errResizeUsage
		}
		w, err := strconv.Atoi(sizeParts[0])
		if err != nil {
			return errResizeUsage
		}
		h, err := strconv.Atoi(sizeParts[1])
		if err != nil {
			return errResizeUsage
		}
		family, err := scale.ParseFamily(algoFlag)
		if err != nil {
			return err
		}
		var pool *parallel.Pool
		if workersFlag > 1 {
			pool = parallel.NewPool(workersFlag)
		}

		f, err := os.Open(args[0])
		if err != nil {
			return errorsGo.New(err)
		}
		defer f.Close()
		src, _, err := image.Decode(f)
		if err != nil {
			return errorsGo.New(err)
		}

		dst, err := rescale.Resize(src, w, h, family, pool)
		if err != nil {
			return err
		}

		out, err := os.Create(args[1])
		if err != nil {
			return errorsGo.New(err)
		}
		defer out.Close()
		switch strings.ToLower(filepath.Ext(args[1])) {
		case `.png`:
			err = png.Encode(out, dst)
		case `.jpg`, `.jpeg`:
			err = jpeg.Encode(out, dst, &jpeg.Options{Quality: 92})
		case `.gif`:
			err = gif.Encode(out, dst, nil)
		case `.bmp`:
			err = bmp.Encode(out, dst)
		case `.tif`, `.tiff`:
			err = tiff.Encode(out, dst, nil)
		default:
			err = png.Encode(out, dst)
		}
		if err != nil {
			return errorsGo.New(err)
		}
		return nil
	}
}
