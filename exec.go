package pixbuf

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/pixbuf/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// validExtensions lists the file types which can be processed.
var validExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

// Ops holds the source and destination of the processing and the number of workers
// used when the source is a directory.
type Ops struct {
	Src, Dst, PipeName string
	Workers            int
}

// result holds the relevant information about the processing of a single image.
type result struct {
	path string
	err  error
}

// Execute runs the image processing over the source defined in op, which can be
// a regular file, a pipe, an URL or a directory. Directories are walked
// recursively and the images are processed concurrently.
func (p *Processor) Execute(op *Ops) error {
	var (
		src = op.Src
		fs  os.FileInfo
		err error
	)
	if p.Spinner == nil {
		p.Spinner = utils.NewSpinner(fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ PIXBUF", utils.StatusMessage),
			utils.DecorateText("⇢ processing image...", utils.DefaultMessage),
		), time.Millisecond*80)
	}

	// Check if source path is a local image or URL.
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if f != nil {
			defer os.Remove(f.Name())
			defer f.Close()
		}
		if err != nil {
			return fmt.Errorf("failed to load the source image: %w", err)
		}
		src = f.Name()
	}

	// Check if the source is a pipe name or a regular file.
	if src == op.PipeName {
		fs, err = os.Stdin.Stat()
	} else {
		fs, err = os.Stat(src)
	}
	if err != nil {
		return fmt.Errorf("failed to load the source image: %w", err)
	}

	// Restore the cursor visibility on CTRL-C.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalChan)

	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-signalChan:
			p.Spinner.RestoreCursor()
			os.Exit(1)
		case <-finished:
		}
	}()

	now := time.Now()

	switch mode := fs.Mode(); {
	case mode.IsDir():
		var wg sync.WaitGroup

		if _, err := os.Stat(op.Dst); err != nil {
			if err := os.MkdirAll(op.Dst, 0755); err != nil {
				return fmt.Errorf("unable to create the destination directory: %w", err)
			}
		}

		// Limit the concurrently running workers to maxWorkers.
		workers := op.Workers
		if workers <= 0 || workers > maxWorkers {
			workers = utils.Min(runtime.NumCPU(), maxWorkers)
		}

		ch := make(chan result)
		done := make(chan struct{})
		defer close(done)

		paths, errc := walkDir(done, src, validExtensions)

		p.Spinner.Start()
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				op.consumer(p, op.Dst, ch, done, paths)
			}()
		}

		// Close the channel after the values are consumed.
		go func() {
			defer close(ch)
			wg.Wait()
		}()

		var failed []result
		for res := range ch {
			if res.err != nil {
				failed = append(failed, res)
			}
		}
		p.Spinner.Stop()

		for _, res := range failed {
			op.printOpStatus(res.path, res.err)
		}
		if err := <-errc; err != nil {
			return err
		}
		if len(failed) > 0 {
			return fmt.Errorf("%d image(s) could not be processed", len(failed))
		}
	case mode.IsRegular() || mode&os.ModeNamedPipe != 0: // check for regular files or pipe names
		ext := strings.ToLower(filepath.Ext(op.Dst))
		if !utils.Contains(validExtensions, ext) && op.Dst != op.PipeName {
			return fmt.Errorf("%v file type not supported", ext)
		}

		p.Spinner.Start()
		err = op.process(p, src, op.Dst)
		p.Spinner.Stop()

		op.printOpStatus(op.Dst, err)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported source: %s", op.Src)
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatDuration(time.Since(now)), utils.SuccessMessage))
	return nil
}

// consumer reads the path names from the paths channel and calls the processor against the source image.
func (op *Ops) consumer(
	p *Processor,
	dest string,
	res chan<- result,
	done <-chan struct{},
	paths <-chan string,
) {
	for src := range paths {
		dst := filepath.Join(dest, filepath.Base(src))
		err := op.process(p, src, dst)

		select {
		case <-done:
			return
		case res <- result{
			path: src,
			err:  err,
		}:
		}
	}
}

// process opens the source and destination files and runs the processor over them.
func (op *Ops) process(p *Processor, in, out string) error {
	src, dst, err := op.pathToFile(in, out)
	if err != nil {
		return err
	}

	defer func() {
		if f, ok := src.(*os.File); ok && f != os.Stdin {
			if err := f.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}
	}()

	err = p.Process(src, dst)

	if f, ok := dst.(*os.File); ok && f != os.Stdout {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			// remove the generated image file in case of an error
			os.Remove(f.Name())
		}
	}
	return err
}

// pathToFile converts the source and destination paths to readable and writable files.
func (op *Ops) pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
		err error
	)

	// Check if the source is a pipe name or a regular file.
	if in == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdin")
		}
		src = os.Stdin
	} else {
		src, err = os.Open(in)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to open the source file: %w", err)
		}
	}

	// Check if the destination is a pipe name or a regular file.
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			closeFile(src)
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		dst, err = os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			closeFile(src)
			return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
		}
	}
	return src, dst, nil
}

func closeFile(r io.Reader) {
	if f, ok := r.(*os.File); ok && f != os.Stdin {
		f.Close()
	}
}

// printOpStatus displays the relevant information about the image processing.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n%s\n", utils.FailureMessage(fname, err))
		return
	}
	if fname != op.PipeName {
		fmt.Fprintf(os.Stderr, "\n%s\n\n", utils.SavedMessage(fname))
	}
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each regular file to a new channel.
// It finishes in case the done channel is getting closed.
func walkDir(
	done <-chan struct{},
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() {
				return nil
			}
			if !utils.Contains(srcExts, strings.ToLower(filepath.Ext(f.Name()))) {
				return nil
			}

			select {
			case <-done:
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}
