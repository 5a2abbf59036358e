package strictread

import (
	"errors"
	"io"
	"math"
	"testing"
	"testing/fstest"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestBufferedReadFromSource(t *testing.T) {
	runSourceTest("3 4\nabc XYZ\n1.25\n", t)
}

func TestBufferedReadFromSingleByteSource(t *testing.T) {
	runSourceTest("S", t)
}

func TestBufferedReadFromEmptySource(t *testing.T) {
	runSourceTest("", t)
}

func runSourceTest(fileContent string, t *testing.T) {
	assert := assert.New(t)

	fs := fstest.MapFS{
		"test/source/test.txt": {
			Data: []byte(fileContent),
		},
	}

	basicInput, err := fs.Open("test/source/test.txt")
	if err != nil {
		panic(err)
	}

	defer basicInput.Close()

	const buffSize = 8
	src := newBufferedSource(basicInput, buffSize)
	expectedInput := []byte(fileContent)

	for i, expected := range expectedInput {
		ch, err := src.readByte()
		if err != nil {
			panic(err)
		}
		if ch != int(expected) {
			t.Errorf("Char read no #%v %v not equal to expected %v", i, ch, expected)
		}
	}

	ch, err := src.readByte()
	if err != nil {
		panic(err)
	}
	if ch != eof {
		t.Errorf("Expected EOF")
	}

	expectedReads := int(math.Ceil(float64(len(expectedInput)) / buffSize))

	assert.Equal(src.numOfReads(), expectedReads, "Incorrect num of read calls")
	assert.Equal(src.bytesIn(), len(expectedInput), "Incorrect num of bytes read")
}

func TestHasNextOnFreshSource(t *testing.T) {
	assert := assert.New(t)

	has, err := newTestSource("x").hasNext()
	assert.Nil(err)
	assert.True(has)

	has, err = newTestSource("").hasNext()
	assert.Nil(err)
	assert.False(has)
}

func TestHasNextDoesNotConsume(t *testing.T) {
	assert := assert.New(t)
	src := newTestSource("x")

	for i := 0; i < 3; i++ {
		has, err := src.hasNext()
		assert.Nil(err)
		assert.True(has)
	}

	ch, err := src.readByte()
	assert.Nil(err)
	assert.Equal(int('x'), ch)
}

func TestPushBackRedelivery(t *testing.T) {
	src := newTestSource("xyz")

	ch, err := src.readByte()
	if err != nil {
		panic(err)
	}
	if ch != 'x' {
		t.Errorf("Char %v not equal to expected %v", ch, 'x')
	}

	src.pushBack('x')
	ch, _ = src.readByte()
	if ch != 'x' {
		t.Errorf("Redelivered char %v not equal to expected %v", ch, 'x')
	}

	first, _ := src.readByte()
	second, _ := src.readByte()
	src.pushBack(byte(first))
	src.pushBack(byte(second))

	// the last pushed byte comes back first
	ch, _ = src.readByte()
	if ch != second {
		t.Errorf("Char %v not equal to expected %v", ch, second)
	}
	ch, _ = src.readByte()
	if ch != first {
		t.Errorf("Char %v not equal to expected %v", ch, first)
	}

	ch, _ = src.readByte()
	if ch != eof {
		t.Errorf("Expected EOF")
	}
}

func TestLineCountOnlyOnFreshNewLines(t *testing.T) {
	assert := assert.New(t)
	src := newTestSource("a\nb\n")

	assert.Equal(1, src.currentLine())

	src.readByte()
	ch, _ := src.readByte()
	assert.Equal(int('\n'), ch)
	assert.Equal(2, src.currentLine())

	src.pushBack(byte(ch))
	ch, _ = src.readByte()
	assert.Equal(int('\n'), ch)
	assert.Equal(2, src.currentLine(), "Redelivered new line counted twice")

	src.readByte()
	src.readByte()
	assert.Equal(3, src.currentLine())

	ch, _ = src.readByte()
	assert.Equal(eof, ch)
	assert.Equal(3, src.currentLine())
}

func TestReadErrorComesBackUnchanged(t *testing.T) {
	boom := errors.New("broken pipe")
	src := newBufferedSource(iotest.ErrReader(boom), 8)

	ch, err := src.readByte()
	if err != boom {
		t.Errorf("Error %v not equal to expected %v", err, boom)
	}
	if ch != eof {
		t.Errorf("Expected EOF")
	}

	_, err = src.readByte()
	if err != boom {
		t.Errorf("Sticky error %v not equal to expected %v", err, boom)
	}
}

func TestBytesDeliveredWithAnErrorAreServedFirst(t *testing.T) {
	assert := assert.New(t)
	boom := errors.New("wire cut")
	src := newBufferedSource(&mockFaultyStream{data: []byte("ok"), err: boom}, 8)

	ch, err := src.readByte()
	assert.Nil(err)
	assert.Equal(int('o'), ch)

	ch, err = src.readByte()
	assert.Nil(err)
	assert.Equal(int('k'), ch)

	_, err = src.readByte()
	assert.Equal(boom, err)
}

func TestSourceGivesUpOnNoProgressStream(t *testing.T) {
	src := newBufferedSource(&mockStuckStream{}, 8)

	_, err := src.readByte()
	if err != io.ErrNoProgress {
		t.Errorf("Error %v not equal to expected %v", err, io.ErrNoProgress)
	}
}

func TestNegativeReadCountPanics(t *testing.T) {
	assert := assert.New(t)
	src := newBufferedSource(&mockNegativeStream{}, 8)

	assert.Panics(func() {
		src.readByte()
	})
}

func newTestSource(fileContent string) *source {
	fs := fstest.MapFS{
		"test/source/test.txt": {
			Data: []byte(fileContent),
		},
	}

	basicInput, err := fs.Open("test/source/test.txt")
	if err != nil {
		panic(err)
	}

	const buffSize = 8
	return newBufferedSource(basicInput, buffSize)
}

type mockFaultyStream struct {
	data []byte
	err  error
}

func (mock *mockFaultyStream) Read(buff []byte) (n int, err error) {
	n = copy(buff, mock.data)
	mock.data = nil
	return n, mock.err
}

type mockStuckStream struct{}

func (mock *mockStuckStream) Read(buff []byte) (n int, err error) {
	return 0, nil
}

type mockNegativeStream struct{}

func (mock *mockNegativeStream) Read(buff []byte) (n int, err error) {
	return -1, nil
}
